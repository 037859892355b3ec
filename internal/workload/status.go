package workload

import (
	"time"
)

const inactiveAfterDays = 14

type Status string

const (
	StatusInjured       Status = "INJURED"
	StatusNoData        Status = "NO_DATA"
	StatusInactive      Status = "INACTIVE"
	StatusOvertraining  Status = "OVERTRAINING"
	StatusAtRisk        Status = "AT_RISK"
	StatusFatigued      Status = "FATIGUED"
	StatusPeaking       Status = "PEAKING"
	StatusUndertraining Status = "UNDERTRAINING"
	StatusNormal        Status = "NORMAL"
)

func (s Status) String() string {
	return string(s)
}

type StatusInput struct {
	Profile        SportProfile
	ActiveInjuries int
	RecordCount    int
	LastRecordAt   time.Time
	Load           LoadSummary
	Fatigue        FatigueSummary
	Recovery       float64
	Risk           Risk
	Now            time.Time
}

// Classify picks the athlete status; the first matching rule wins.
func Classify(in StatusInput) Status {
	acwrTrusted := !in.Load.InsufficientHistory
	acwr := in.Load.ACWR
	fatigue := in.Fatigue.Index

	switch {
	case in.ActiveInjuries > 0:
		return StatusInjured
	case in.RecordCount == 0:
		return StatusNoData
	case DaysBetween(Day(in.LastRecordAt), Day(in.Now)) > inactiveAfterDays:
		return StatusInactive
	case acwrTrusted && acwr > in.Profile.OvertrainingACWR,
		fatigue >= 80,
		in.Recovery < 40 && fatigue >= 65:
		return StatusOvertraining
	case in.Risk.Score >= 50:
		return StatusAtRisk
	case in.Recovery < 50:
		return StatusFatigued
	case acwr >= 0.8 && acwr <= 1.3 && in.Recovery >= in.Profile.PeakRecoveryMin && fatigue <= 55:
		return StatusPeaking
	case acwrTrusted && acwr < 0.8:
		return StatusUndertraining
	default:
		return StatusNormal
	}
}
