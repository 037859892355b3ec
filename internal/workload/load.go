package workload

import (
	"math"
	"time"

	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

const (
	AcuteWindowDays   = 7
	ChronicWindowDays = 28
)

var (
	acuteLambda   = 2.0 / float64(AcuteWindowDays+1)
	chronicLambda = 2.0 / float64(ChronicWindowDays+1)
)

// SessionLoad is the session-RPE load (minutes x RPE) scaled by the sport multiplier.
func SessionLoad(r performance.Record, profile SportProfile) float64 {
	return float64(r.DurationMinutes) * float64(r.Intensity) * profile.LoadMultiplier
}

// DailyLoads sums session loads per UTC day for the given number of days ending today.
// Index 0 is the oldest day, the last index is today. Records outside the window are ignored.
func DailyLoads(records []performance.Record, profile SportProfile, now time.Time, days int) []float64 {
	if days <= 0 {
		return nil
	}
	loads := make([]float64, days)
	today := Day(now)
	for _, r := range records {
		age := DaysBetween(Day(r.Date), today)
		if age < 0 || age >= days {
			continue
		}
		loads[days-1-age] += SessionLoad(r, profile)
	}
	return loads
}

// EWMA is the exponentially weighted moving average of the series, seeded with its first value.
func EWMA(series []float64, lambda float64) float64 {
	if len(series) == 0 {
		return 0
	}
	avg := series[0]
	for _, v := range series[1:] {
		avg = v*lambda + (1-lambda)*avg
	}
	return avg
}

type LoadSummary struct {
	Acute               float64 `json:"acute"`
	Chronic             float64 `json:"chronic"`
	ACWR                float64 `json:"acwr"`
	InsufficientHistory bool    `json:"insufficientHistory"`
}

// Load computes acute (7-day) and chronic (28-day) EWMA loads and their ratio.
// History is insufficient when there is no chronic load or the oldest record is
// less than a week old; the ratio is then not trusted by the risk and status rules.
func Load(records []performance.Record, profile SportProfile, now time.Time) LoadSummary {
	daily := DailyLoads(records, profile, now, ChronicWindowDays)
	acute := EWMA(daily[len(daily)-AcuteWindowDays:], acuteLambda)
	chronic := EWMA(daily, chronicLambda)

	summary := LoadSummary{
		Acute:   pkg.Round1(acute),
		Chronic: pkg.Round1(chronic),
	}
	if chronic > 0 {
		summary.ACWR = roundTo(acute/chronic, 2)
	}

	oldest, ok := oldestRecordDate(records, now)
	summary.InsufficientHistory = chronic <= 0 || !ok || DaysBetween(Day(oldest), Day(now)) < AcuteWindowDays
	return summary
}

type LoadPoint struct {
	Date    time.Time `json:"date"`
	Load    float64   `json:"load"`
	Acute   float64   `json:"acute"`
	Chronic float64   `json:"chronic"`
}

// LoadSeries returns the daily load of the last given days, oldest first. Each point
// carries the acute and chronic load as Load would report them on that day, so the
// records passed in must reach back SeriesHistoryDays(days) days.
func LoadSeries(records []performance.Record, profile SportProfile, now time.Time, days int) []LoadPoint {
	if days <= 0 {
		return nil
	}
	history := DailyLoads(records, profile, now, SeriesHistoryDays(days))
	points := make([]LoadPoint, 0, days)
	start := Day(now).AddDate(0, 0, -(days - 1))

	for i := 0; i < days; i++ {
		chronicWindow := history[i : i+ChronicWindowDays]
		points = append(points, LoadPoint{
			Date:    start.AddDate(0, 0, i),
			Load:    pkg.Round1(chronicWindow[ChronicWindowDays-1]),
			Acute:   pkg.Round1(EWMA(chronicWindow[ChronicWindowDays-AcuteWindowDays:], acuteLambda)),
			Chronic: pkg.Round1(EWMA(chronicWindow, chronicLambda)),
		})
	}
	return points
}

// SeriesHistoryDays is how many days of records a load series of the given length needs.
func SeriesHistoryDays(days int) int {
	return days + ChronicWindowDays - 1
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from day a to day b (both truncated).
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func oldestRecordDate(records []performance.Record, now time.Time) (time.Time, bool) {
	var oldest time.Time
	found := false
	for _, r := range records {
		if r.Date.After(now) {
			continue
		}
		if !found || r.Date.Before(oldest) {
			oldest = r.Date
			found = true
		}
	}
	return oldest, found
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
