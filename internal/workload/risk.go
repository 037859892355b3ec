package workload

import (
	"math"
	"sort"
	"time"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

const recentInjuryPeriod = 90 * 24 * time.Hour

type RiskLabel string

const (
	RiskLow      RiskLabel = "LOW"
	RiskModerate RiskLabel = "MODERATE"
	RiskHigh     RiskLabel = "HIGH"
	RiskCritical RiskLabel = "CRITICAL"
)

type RiskFactor struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

type Risk struct {
	Score   float64      `json:"score"`
	Label   RiskLabel    `json:"label"`
	Factors []RiskFactor `json:"factors"`
}

type RiskInput struct {
	Athlete  athletes.Athlete
	Profile  SportProfile
	Load     LoadSummary
	Fatigue  FatigueSummary
	Recovery float64
	HasData  bool
	Injuries []injuries.Injury
	Now      time.Time
}

// InjuryRisk sums the weighted risk factors into a 0..100 score. Factors are
// returned highest first and only when they contribute points.
func InjuryRisk(in RiskInput) Risk {
	var factors []RiskFactor
	add := func(name string, points float64) {
		if points = pkg.Round1(points); points > 0 {
			factors = append(factors, RiskFactor{Name: name, Points: points})
		}
	}

	if !in.Load.InsufficientHistory {
		switch acwr := in.Load.ACWR; {
		case acwr > 1.5:
			add("acwr_spike", 35)
		case acwr > 1.3:
			add("acwr_elevated", 20)
		case acwr < 0.8:
			add("acwr_undertrained", 10)
		}
	}

	add("fatigue", math.Max(0, in.Fatigue.Index-50)*0.5)
	if in.HasData {
		add("recovery_deficit", (100-in.Recovery)*0.2)
	}

	var active, recent int
	for _, inj := range in.Injuries {
		switch {
		case inj.Active():
			active++
		case inj.RecoveredWithin(in.Now, recentInjuryPeriod):
			recent++
		}
	}
	add("active_injuries", math.Min(30, float64(active)*15))
	add("recent_injuries", math.Min(10, float64(recent)*5))

	add("sport", in.Profile.BaseRisk)
	add("age", math.Min(10, math.Max(0, float64(in.Athlete.Age-30))*0.5))

	var score float64
	for _, f := range factors {
		score += f.Points
	}
	score = pkg.Round1(pkg.Clamp(score, 0, 100))

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Points > factors[j].Points
	})
	if factors == nil {
		factors = make([]RiskFactor, 0)
	}

	return Risk{
		Score:   score,
		Label:   RiskLevel(score),
		Factors: factors,
	}
}

func RiskLevel(score float64) RiskLabel {
	switch {
	case score < 25:
		return RiskLow
	case score < 50:
		return RiskModerate
	case score < 75:
		return RiskHigh
	default:
		return RiskCritical
	}
}
