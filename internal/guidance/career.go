package guidance

import (
	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

const lateCareerYears = 4

type CareerPhase string

const (
	PhaseDevelopment CareerPhase = "DEVELOPMENT"
	PhasePeak        CareerPhase = "PEAK"
	PhaseLateCareer  CareerPhase = "LATE_CAREER"
	PhaseTransition  CareerPhase = "TRANSITION"
)

type CareerPlan struct {
	AthleteID       int         `json:"athleteId"`
	Sport           string      `json:"sport"`
	Age             int         `json:"age"`
	Phase           CareerPhase `json:"phase"`
	PeakAgeMin      int         `json:"peakAgeMin"`
	PeakAgeMax      int         `json:"peakAgeMax"`
	YearsToPeak     int         `json:"yearsToPeak"`
	CareerAdvice    []string    `json:"careerAdvice"`
	FinancialAdvice []string    `json:"financialAdvice"`
}

var careerAdvice = map[CareerPhase][]string{
	PhaseDevelopment: {
		"Prioritise skill acquisition and a broad athletic base over short-term results.",
		"Build training age gradually; avoid early single-sport overload.",
		"Find a coach and a competition calendar that allow long-term progression.",
	},
	PhasePeak: {
		"Protect availability: consistent recovery is worth more than extra volume.",
		"Target the key competitions and periodise the season around them.",
		"Document performance data to support contract and selection decisions.",
	},
	PhaseLateCareer: {
		"Shift emphasis to recovery, mobility and injury prevention.",
		"Consider role changes that reward experience and game intelligence.",
		"Start building coaching, media or business skills alongside competing.",
	},
	PhaseTransition: {
		"Plan the move out of full-time competition on your own terms.",
		"Use qualifications and networks from your career to open a second one.",
		"Keep training for health; de-training abruptly hurts both body and mood.",
	},
}

var financialAdvice = map[CareerPhase][]string{
	PhaseDevelopment: {
		"Keep fixed costs low and track sport-related expenses from day one.",
		"Look for scholarships, grants and federation support before taking on debt.",
	},
	PhasePeak: {
		"Save a large share of peak earnings; income this high rarely lasts.",
		"Get professional advice on contracts, taxes and image rights.",
		"Build an emergency fund that covers at least a season without income.",
	},
	PhaseLateCareer: {
		"Reduce lifestyle costs to what post-career income can sustain.",
		"Invest in education or certifications for the next career.",
	},
	PhaseTransition: {
		"Create a budget for the income gap between careers.",
		"Review pensions, insurance and investments with an advisor.",
	},
}

var categoryAdvice = map[workload.SportCategory]map[CareerPhase]string{
	workload.CategoryEndurance: {
		PhaseLateCareer: "Endurance performance often holds into the mid thirties; longer events suit experience.",
	},
	workload.CategoryStrength: {
		PhasePeak: "Strength gains need long cycles; plan multi-year progressions around the peak window.",
	},
	workload.CategoryTeam: {
		PhaseLateCareer: "Team sports value leadership: mentoring younger players extends careers.",
	},
	workload.CategorySkill: {
		PhaseTransition: "Skill sports allow competing at masters level long after the elite window.",
	},
}

// Phase places an age relative to the sport's peak window.
func Phase(age int, profile workload.SportProfile) CareerPhase {
	switch {
	case age < profile.PeakAgeMin:
		return PhaseDevelopment
	case age <= profile.PeakAgeMax:
		return PhasePeak
	case age <= profile.PeakAgeMax+lateCareerYears:
		return PhaseLateCareer
	default:
		return PhaseTransition
	}
}

func Career(athlete athletes.Athlete, profile workload.SportProfile) CareerPlan {
	phase := Phase(athlete.Age, profile)

	plan := CareerPlan{
		AthleteID:       athlete.ID,
		Sport:           profile.Name,
		Age:             athlete.Age,
		Phase:           phase,
		PeakAgeMin:      profile.PeakAgeMin,
		PeakAgeMax:      profile.PeakAgeMax,
		CareerAdvice:    append([]string{}, careerAdvice[phase]...),
		FinancialAdvice: append([]string{}, financialAdvice[phase]...),
	}
	if phase == PhaseDevelopment {
		plan.YearsToPeak = profile.PeakAgeMin - athlete.Age
	}
	if extra, ok := categoryAdvice[profile.Category][phase]; ok {
		plan.CareerAdvice = append(plan.CareerAdvice, extra)
	}

	return plan
}
