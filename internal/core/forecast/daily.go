// Package forecast reduces the provider's 3-hour forecast feed to one
// representative sample per calendar day.
package forecast

import (
	"sort"
	"time"

	"weatherlookup.app/internal/core/weather"
)

const (
	// MaxDays is the number of daily entries shown in the forecast strip
	MaxDays = 5

	middayStartHour = 11
	middayEndHour   = 15
)

// DayKey returns the calendar day of t in loc as YYYY-MM-DD
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// PickDaily selects at most MaxDays samples, one per calendar day in loc.
// A sample between 11:00 and 15:59 is preferred; days without one get their
// first sample instead. The result is ordered by timestamp.
func PickDaily(samples []weather.ForecastSample, loc *time.Location) []weather.ForecastSample {
	if loc == nil {
		loc = time.Local
	}

	picked := make([]weather.ForecastSample, 0, MaxDays)
	seen := make(map[string]bool, MaxDays)

	for _, sample := range samples {
		if len(picked) >= MaxDays {
			break
		}
		local := sample.Timestamp.In(loc)
		hour := local.Hour()
		if hour < middayStartHour || hour > middayEndHour {
			continue
		}
		key := DayKey(sample.Timestamp, loc)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, sample)
	}

	for _, sample := range samples {
		if len(picked) >= MaxDays {
			break
		}
		key := DayKey(sample.Timestamp, loc)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, sample)
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Timestamp.Before(picked[j].Timestamp)
	})

	return picked
}
