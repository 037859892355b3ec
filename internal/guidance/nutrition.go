package guidance

import (
	"errors"
	"math"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

var ErrMissingBodyData = errors.New("weight, height and age are required for a nutrition plan")

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
	fatShare           = 0.25
)

var proteinPerKg = map[workload.SportCategory]float64{
	workload.CategoryEndurance: 1.4,
	workload.CategoryStrength:  1.8,
	workload.CategoryTeam:      1.6,
	workload.CategorySkill:     1.3,
}

var mealSplit = []struct {
	name  string
	share float64
}{
	{"breakfast", 0.25},
	{"lunch", 0.30},
	{"snack", 0.15},
	{"dinner", 0.30},
}

type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"proteinG"`
	CarbsG   int    `json:"carbsG"`
	FatG     int    `json:"fatG"`
}

type NutritionPlan struct {
	AthleteID      int     `json:"athleteId"`
	BMR            float64 `json:"bmr"`
	ActivityFactor float64 `json:"activityFactor"`
	Calories       int     `json:"calories"`
	ProteinG       int     `json:"proteinG"`
	CarbsG         int     `json:"carbsG"`
	FatG           int     `json:"fatG"`
	Meals          []Meal  `json:"meals"`
}

// Nutrition derives daily energy and macro targets: Mifflin-St Jeor BMR times an
// activity factor taken from the acute daily load.
func Nutrition(athlete athletes.Athlete, snap workload.Snapshot) (*NutritionPlan, error) {
	if athlete.WeightKg <= 0 || athlete.HeightCm <= 0 || athlete.Age <= 0 {
		return nil, ErrMissingBodyData
	}

	bmr := BMR(athlete)
	activity := ActivityFactor(snap.Load.Acute)
	calories := math.Round(bmr * activity)

	category := workload.LookupSport(athlete.Sport).Category
	perKg, ok := proteinPerKg[category]
	if !ok {
		perKg = proteinPerKg[workload.CategoryTeam]
	}

	proteinG := math.Round(athlete.WeightKg * perKg)
	fatG := math.Round(calories * fatShare / kcalPerGramFat)
	carbsG := math.Round(math.Max(0, calories-proteinG*kcalPerGramProtein-fatG*kcalPerGramFat) / kcalPerGramCarbs)

	plan := &NutritionPlan{
		AthleteID:      athlete.ID,
		BMR:            pkg.Round1(bmr),
		ActivityFactor: activity,
		Calories:       int(calories),
		ProteinG:       int(proteinG),
		CarbsG:         int(carbsG),
		FatG:           int(fatG),
		Meals:          make([]Meal, 0, len(mealSplit)),
	}
	for _, m := range mealSplit {
		plan.Meals = append(plan.Meals, Meal{
			Name:     m.name,
			Calories: int(math.Round(calories * m.share)),
			ProteinG: int(math.Round(proteinG * m.share)),
			CarbsG:   int(math.Round(carbsG * m.share)),
			FatG:     int(math.Round(fatG * m.share)),
		})
	}

	return plan, nil
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
// Without a known gender the midpoint of both offsets is used.
func BMR(a athletes.Athlete) float64 {
	base := 10*a.WeightKg + 6.25*a.HeightCm - 5*float64(a.Age)
	switch a.Gender {
	case athletes.GenderMale:
		return base + 5
	case athletes.GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

func ActivityFactor(acuteDailyLoad float64) float64 {
	switch {
	case acuteDailyLoad < 150:
		return 1.4
	case acuteDailyLoad < 300:
		return 1.55
	case acuteDailyLoad < 450:
		return 1.7
	default:
		return 1.9
	}
}
