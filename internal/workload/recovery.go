package workload

import (
	"time"

	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

const (
	neutralSleepScore  = 50
	neutralRestingHR   = 75
	baselineWindowDays = 28
	idealSleepHours    = 8.0
)

// Recovery scores 0..100 how recovered the athlete is after the latest session:
// 40% sleep, 30% soreness and 30% resting heart rate drift from its recent baseline.
func Recovery(records []performance.Record) float64 {
	latest, ok := Latest(records)
	if !ok {
		return 0
	}

	sleep := float64(neutralSleepScore)
	if latest.SleepHours > 0 {
		sleep = pkg.Clamp(latest.SleepHours/idealSleepHours, 0, 1) * 100
	}

	soreness := float64(10-latest.Soreness) * 10

	rhr := float64(neutralRestingHR)
	if baseline, ok := restingHRBaseline(records, latest); ok && latest.RestingHeartRate > 0 {
		rhr = pkg.Clamp(100-10*(float64(latest.RestingHeartRate)-baseline), 0, 100)
	}

	return pkg.Round1(0.4*sleep + 0.3*soreness + 0.3*rhr)
}

// Latest returns the record with the most recent date.
func Latest(records []performance.Record) (performance.Record, bool) {
	if len(records) == 0 {
		return performance.Record{}, false
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.Date.After(latest.Date) || (r.Date.Equal(latest.Date) && r.ID > latest.ID) {
			latest = r
		}
	}
	return latest, true
}

// restingHRBaseline is the mean resting heart rate of the earlier records
// in the four weeks before the latest one.
func restingHRBaseline(records []performance.Record, latest performance.Record) (float64, bool) {
	from := latest.Date.Add(-baselineWindowDays * 24 * time.Hour)
	var sum float64
	var n int
	for _, r := range records {
		if r.ID == latest.ID && r.Date.Equal(latest.Date) {
			continue
		}
		if r.RestingHeartRate <= 0 || r.Date.After(latest.Date) || r.Date.Before(from) {
			continue
		}
		sum += float64(r.RestingHeartRate)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
