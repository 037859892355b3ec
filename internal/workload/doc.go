// Package workload derives per-athlete training metrics from the raw training logs
// and injury history: exertion level, session and acute/chronic training load,
// fatigue index (impulse-response decay over the history), recovery score,
// injury-risk score and the categorical athlete status.
//
// Every function is pure and takes the evaluation time explicitly, so the same
// inputs always yield the same snapshot. Days are bucketed by UTC calendar date.
package workload
