package workload

import (
	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

const defaultRestingHeartRate = 60

type ExertionLabel string

const (
	ExertionLow      ExertionLabel = "LOW"
	ExertionModerate ExertionLabel = "MODERATE"
	ExertionHigh     ExertionLabel = "HIGH"
	ExertionMaximal  ExertionLabel = "MAXIMAL"
)

// Exertion scores a session 0..100, blending the heart rate reserve used (Karvonen)
// with the reported RPE. Without an average heart rate only the RPE counts.
func Exertion(athlete athletes.Athlete, r performance.Record) float64 {
	rpe := pkg.Clamp(float64(r.Intensity)/10, 0, 1)
	if r.AvgHeartRate <= 0 {
		return pkg.Round1(100 * rpe)
	}

	hrMax := athlete.HeartRateMax()
	if r.MaxHeartRate > hrMax {
		hrMax = r.MaxHeartRate
	}
	hrRest := r.RestingHeartRate
	if hrRest <= 0 {
		hrRest = defaultRestingHeartRate
	}

	var hrr float64
	if hrMax > hrRest {
		hrr = pkg.Clamp(float64(r.AvgHeartRate-hrRest)/float64(hrMax-hrRest), 0, 1)
	}

	return pkg.Round1(100 * (0.6*hrr + 0.4*rpe))
}

func ExertionLevel(exertion float64) ExertionLabel {
	switch {
	case exertion < 30:
		return ExertionLow
	case exertion < 60:
		return ExertionModerate
	case exertion < 85:
		return ExertionHigh
	default:
		return ExertionMaximal
	}
}
