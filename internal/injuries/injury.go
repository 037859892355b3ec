package injuries

import (
	"errors"
	"strings"
	"time"
)

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}

type Injury struct {
	ID             int        `json:"id"`
	AthleteID      int        `json:"athleteId"`
	BodyPart       string     `json:"bodyPart"`
	Description    string     `json:"description"`
	Severity       Severity   `json:"severity"`
	InjuredAt      time.Time  `json:"injuredAt"`
	RecoveredAt    *time.Time `json:"recoveredAt,omitempty"`
	ExpectedReturn *time.Time `json:"expectedReturn,omitempty"`
}

// Active means the athlete has not recovered from the injury yet.
func (i Injury) Active() bool {
	return i.RecoveredAt == nil
}

// RecoveredWithin reports whether the injury healed within the given period before now.
func (i Injury) RecoveredWithin(now time.Time, period time.Duration) bool {
	if i.RecoveredAt == nil {
		return false
	}
	return !i.RecoveredAt.After(now) && now.Sub(*i.RecoveredAt) <= period
}

func (i Injury) Validate() error {
	if strings.TrimSpace(i.BodyPart) == "" {
		return errors.New("body part empty")
	}
	if !i.Severity.IsValid() {
		return errors.New("severity must be one of: minor, moderate, severe")
	}
	if i.RecoveredAt != nil && i.RecoveredAt.Before(i.InjuredAt) {
		return errors.New("recovered before injured")
	}
	return nil
}
