package workload

import (
	"time"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
)

type Input struct {
	Athlete  athletes.Athlete
	Records  []performance.Record
	Injuries []injuries.Injury
	Now      time.Time
}

type Snapshot struct {
	AthleteID      int            `json:"athleteId"`
	Sport          string         `json:"sport"`
	ComputedAt     time.Time      `json:"computedAt"`
	RecordCount    int            `json:"recordCount"`
	LastRecordAt   *time.Time     `json:"lastRecordAt,omitempty"`
	Exertion       float64        `json:"exertion"`
	ExertionLabel  ExertionLabel  `json:"exertionLabel,omitempty"`
	SessionLoad    float64        `json:"sessionLoad"`
	Load           LoadSummary    `json:"load"`
	Fatigue        FatigueSummary `json:"fatigue"`
	Recovery       float64        `json:"recovery"`
	Risk           Risk           `json:"risk"`
	ActiveInjuries int            `json:"activeInjuries"`
	Status         Status         `json:"status"`
}

// Compute derives the full metrics snapshot of an athlete at in.Now.
func Compute(in Input) Snapshot {
	profile := LookupSport(in.Athlete.Sport)

	// future-dated records do not count
	records := make([]performance.Record, 0, len(in.Records))
	for _, r := range in.Records {
		if !r.Date.After(in.Now) {
			records = append(records, r)
		}
	}

	snap := Snapshot{
		AthleteID:   in.Athlete.ID,
		Sport:       profile.Name,
		ComputedAt:  in.Now,
		RecordCount: len(records),
	}

	for _, inj := range in.Injuries {
		if inj.Active() {
			snap.ActiveInjuries++
		}
	}

	latest, hasLatest := Latest(records)
	if hasLatest {
		lastAt := latest.Date
		snap.LastRecordAt = &lastAt
		snap.Exertion = Exertion(in.Athlete, latest)
		snap.ExertionLabel = ExertionLevel(snap.Exertion)
		snap.SessionLoad = roundTo(SessionLoad(latest, profile), 1)
	}

	snap.Load = Load(records, profile, in.Now)
	snap.Fatigue = Fatigue(records, profile, in.Now)
	snap.Recovery = Recovery(records)
	snap.Risk = InjuryRisk(RiskInput{
		Athlete:  in.Athlete,
		Profile:  profile,
		Load:     snap.Load,
		Fatigue:  snap.Fatigue,
		Recovery: snap.Recovery,
		HasData:  hasLatest,
		Injuries: in.Injuries,
		Now:      in.Now,
	})
	snap.Status = Classify(StatusInput{
		Profile:        profile,
		ActiveInjuries: snap.ActiveInjuries,
		RecordCount:    snap.RecordCount,
		LastRecordAt:   latest.Date,
		Load:           snap.Load,
		Fatigue:        snap.Fatigue,
		Recovery:       snap.Recovery,
		Risk:           snap.Risk,
		Now:            in.Now,
	})

	return snap
}
