package guidance

import (
	"math"
	"time"

	"github.com/shreyajaiswal17/athletehub/internal/workload"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

const (
	scheduleDays       = 7
	maxSessionMinutes  = 180
	sessionRoundingMin = 5
)

type SessionType string

const (
	SessionRest      SessionType = "REST"
	SessionRecovery  SessionType = "RECOVERY"
	SessionEndurance SessionType = "ENDURANCE"
	SessionTechnique SessionType = "TECHNIQUE"
	SessionStrength  SessionType = "STRENGTH"
	SessionIntervals SessionType = "INTERVALS"
	SessionGamePrep  SessionType = "GAME_PREP"
)

type PlannedSession struct {
	Date            time.Time   `json:"date"`
	Session         SessionType `json:"session"`
	DurationMinutes int         `json:"durationMinutes"`
	Intensity       int         `json:"intensity"`
}

type Schedule struct {
	AthleteID         int              `json:"athleteId"`
	Status            workload.Status  `json:"status"`
	LoadFactor        float64          `json:"loadFactor"`
	TargetWeeklyLoad  float64          `json:"targetWeeklyLoad"`
	PlannedWeeklyLoad float64          `json:"plannedWeeklyLoad"`
	Days              []PlannedSession `json:"days"`
	Flags             []string         `json:"flags"`
}

type templateDay struct {
	session   SessionType
	minutes   int
	intensity int
}

var (
	balancedWeek = []templateDay{
		{SessionStrength, 60, 6},
		{SessionEndurance, 60, 5},
		{SessionTechnique, 45, 4},
		{SessionIntervals, 45, 8},
		{SessionRecovery, 30, 3},
		{SessionGamePrep, 60, 7},
		{SessionRest, 0, 0},
	}
	peakingWeek = []templateDay{
		{SessionTechnique, 45, 5},
		{SessionIntervals, 40, 8},
		{SessionRecovery, 30, 3},
		{SessionGamePrep, 60, 7},
		{SessionRest, 0, 0},
		{SessionTechnique, 45, 5},
		{SessionEndurance, 45, 5},
	}
	deloadWeek = []templateDay{
		{SessionRecovery, 30, 2},
		{SessionRest, 0, 0},
		{SessionRecovery, 30, 3},
		{SessionTechnique, 30, 4},
		{SessionRest, 0, 0},
		{SessionEndurance, 40, 4},
		{SessionRest, 0, 0},
	}
	fatiguedWeek = []templateDay{
		{SessionRecovery, 30, 3},
		{SessionTechnique, 45, 4},
		{SessionRest, 0, 0},
		{SessionEndurance, 45, 5},
		{SessionRecovery, 30, 3},
		{SessionStrength, 45, 5},
		{SessionRest, 0, 0},
	}
	rehabWeek = []templateDay{
		{SessionRecovery, 20, 2},
		{SessionRest, 0, 0},
		{SessionRecovery, 20, 2},
		{SessionRest, 0, 0},
		{SessionRecovery, 30, 3},
		{SessionRest, 0, 0},
		{SessionRecovery, 20, 2},
	}
	buildWeek = []templateDay{
		{SessionStrength, 60, 7},
		{SessionEndurance, 75, 6},
		{SessionIntervals, 45, 8},
		{SessionTechnique, 60, 5},
		{SessionStrength, 60, 7},
		{SessionGamePrep, 75, 7},
		{SessionRecovery, 30, 3},
	}
	returnWeek = []templateDay{
		{SessionEndurance, 30, 4},
		{SessionRest, 0, 0},
		{SessionTechnique, 30, 4},
		{SessionRest, 0, 0},
		{SessionStrength, 30, 5},
		{SessionRest, 0, 0},
		{SessionEndurance, 40, 4},
	}
)

var weekTemplates = map[workload.Status][]templateDay{
	workload.StatusInjured:       rehabWeek,
	workload.StatusNoData:        returnWeek,
	workload.StatusInactive:      returnWeek,
	workload.StatusOvertraining:  deloadWeek,
	workload.StatusAtRisk:        fatiguedWeek,
	workload.StatusFatigued:      fatiguedWeek,
	workload.StatusPeaking:       peakingWeek,
	workload.StatusUndertraining: buildWeek,
	workload.StatusNormal:        balancedWeek,
}

var loadFactors = map[workload.Status]float64{
	workload.StatusOvertraining:  0.6,
	workload.StatusFatigued:      0.8,
	workload.StatusInjured:       0.3,
	workload.StatusUndertraining: 1.15,
	workload.StatusPeaking:       1.0,
}

// LoadFactor is the share of the usual weekly load planned for an athlete in the given status.
func LoadFactor(status workload.Status) float64 {
	if f, ok := loadFactors[status]; ok {
		return f
	}
	return 1.0
}

// TrainingSchedule plans the 7 days starting tomorrow. Session durations of the status
// template are scaled so the planned load hits chronic*7*factor; without a chronic
// load the template is used as is.
func TrainingSchedule(snap workload.Snapshot, profile workload.SportProfile, now time.Time) Schedule {
	template, ok := weekTemplates[snap.Status]
	if !ok {
		template = balancedWeek
	}
	factor := LoadFactor(snap.Status)

	var nominal float64
	for _, d := range template {
		nominal += float64(d.minutes*d.intensity) * profile.LoadMultiplier
	}

	scale := 1.0
	target := nominal
	if snap.Load.Chronic > 0 && nominal > 0 {
		target = snap.Load.Chronic * scheduleDays * factor
		scale = target / nominal
	}

	schedule := Schedule{
		AthleteID:        snap.AthleteID,
		Status:           snap.Status,
		LoadFactor:       factor,
		TargetWeeklyLoad: pkg.Round1(target),
		Days:             make([]PlannedSession, 0, scheduleDays),
		Flags:            RiskFlags(snap.Risk),
	}

	start := workload.Day(now).AddDate(0, 0, 1)
	var planned float64
	for i, d := range template {
		minutes := scaleMinutes(d.minutes, scale)
		session := PlannedSession{
			Date:            start.AddDate(0, 0, i),
			Session:         d.session,
			DurationMinutes: minutes,
			Intensity:       d.intensity,
		}
		if minutes == 0 {
			session.Session = SessionRest
			session.Intensity = 0
		}
		planned += float64(session.DurationMinutes*session.Intensity) * profile.LoadMultiplier
		schedule.Days = append(schedule.Days, session)
	}
	schedule.PlannedWeeklyLoad = pkg.Round1(planned)

	return schedule
}

// scaleMinutes rounds to 5 minute blocks and caps a single session at 3 hours.
func scaleMinutes(minutes int, scale float64) int {
	if minutes == 0 {
		return 0
	}
	scaled := math.Round(float64(minutes)*scale/sessionRoundingMin) * sessionRoundingMin
	return int(math.Min(scaled, maxSessionMinutes))
}
