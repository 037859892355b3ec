package workload

import (
	"math"
	"time"

	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

const (
	FatigueWindowDays = 42
	fatigueTau        = 7.0
	fitnessTau        = 42.0
)

type FatigueSummary struct {
	Index   float64 `json:"index"`
	Fatigue float64 `json:"fatigue"`
	Fitness float64 `json:"fitness"`
	Form    float64 `json:"form"`
}

// Fatigue applies the fitness-fatigue impulse-response model over the last
// FatigueWindowDays: each session's load decays with exp(-age/7) for fatigue and
// exp(-age/42) for fitness. Both sums are normalised by their kernel mass over the
// window, so steady daily training yields equal fatigue and fitness and an index of 50.
func Fatigue(records []performance.Record, profile SportProfile, now time.Time) FatigueSummary {
	today := Day(now)

	var fatigue, fitness float64
	for _, r := range records {
		age := DaysBetween(Day(r.Date), today)
		if age < 0 || age >= FatigueWindowDays {
			continue
		}
		load := SessionLoad(r, profile)
		fatigue += load * math.Exp(-float64(age)/fatigueTau)
		fitness += load * math.Exp(-float64(age)/fitnessTau)
	}

	fatigue /= kernelMass(fatigueTau, FatigueWindowDays)
	fitness /= kernelMass(fitnessTau, FatigueWindowDays)

	summary := FatigueSummary{
		Fatigue: pkg.Round1(fatigue),
		Fitness: pkg.Round1(fitness),
		Form:    pkg.Round1(fitness - fatigue),
	}
	if fitness > 0 {
		summary.Index = pkg.Round1(pkg.Clamp(50*fatigue/fitness, 0, 100))
	}
	return summary
}

func kernelMass(tau float64, days int) float64 {
	var sum float64
	for d := 0; d < days; d++ {
		sum += math.Exp(-float64(d) / tau)
	}
	return sum
}
