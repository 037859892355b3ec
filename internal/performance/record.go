package performance

import (
	"errors"
	"time"
)

// Record is a single training log entry (one session) of an athlete.
type Record struct {
	ID               int       `json:"id"`
	AthleteID        int       `json:"athleteId"`
	Date             time.Time `json:"date"`
	DurationMinutes  int       `json:"durationMinutes"`
	Intensity        int       `json:"intensity"` // session RPE, 1..10
	AvgHeartRate     int       `json:"avgHeartRate"`
	MaxHeartRate     int       `json:"maxHeartRate"`
	RestingHeartRate int       `json:"restingHeartRate"`
	SleepHours       float64   `json:"sleepHours"`
	Soreness         int       `json:"soreness"` // 0..10
	DistanceKm       float64   `json:"distanceKm"`
	Calories         int       `json:"calories"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (r Record) Validate() error {
	if r.DurationMinutes < 0 {
		return errors.New("duration cannot be negative")
	}
	if r.Intensity < 1 || r.Intensity > 10 {
		return errors.New("intensity must be between 1 and 10")
	}
	if r.Soreness < 0 || r.Soreness > 10 {
		return errors.New("soreness must be between 0 and 10")
	}
	if r.SleepHours < 0 || r.SleepHours > 24 {
		return errors.New("sleep hours must be between 0 and 24")
	}
	if r.AvgHeartRate < 0 || r.MaxHeartRate < 0 || r.RestingHeartRate < 0 {
		return errors.New("heart rates cannot be negative")
	}
	if r.DistanceKm < 0 || r.Calories < 0 {
		return errors.New("distance and calories cannot be negative")
	}
	return nil
}
