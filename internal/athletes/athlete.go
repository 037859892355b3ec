package athletes

import (
	"errors"
	"strings"
	"time"
)

const defaultMaxHeartRate = 190

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Athlete struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Gender       Gender    `json:"gender"`
	Sport        string    `json:"sport"`
	Position     string    `json:"position"`
	HeightCm     float64   `json:"heightCm"`
	WeightKg     float64   `json:"weightKg"`
	MaxHeartRate int       `json:"maxHeartRate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HeartRateMax returns the configured max heart rate, or the 220-age estimate.
func (a Athlete) HeartRateMax() int {
	if a.MaxHeartRate > 0 {
		return a.MaxHeartRate
	}
	if a.Age > 0 {
		return 220 - a.Age
	}
	return defaultMaxHeartRate
}

func (a Athlete) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name empty")
	}
	if strings.TrimSpace(a.Sport) == "" {
		return errors.New("sport empty")
	}
	if a.Age <= 0 || a.Age >= 120 {
		return errors.New("age must be between 1 and 119")
	}
	if a.HeightCm < 0 || a.WeightKg < 0 {
		return errors.New("height and weight cannot be negative")
	}
	if a.MaxHeartRate < 0 {
		return errors.New("max heart rate cannot be negative")
	}
	switch a.Gender {
	case "", GenderMale, GenderFemale, GenderOther:
	default:
		return errors.New("gender must be one of: male, female, other")
	}
	return nil
}
