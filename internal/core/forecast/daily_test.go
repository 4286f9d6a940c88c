package forecast

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/weather"
)

var start = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

// series builds 3-hour samples from first for the given number of steps,
// leaving out any sample for which skip returns true.
func series(first time.Time, steps int, skip func(time.Time) bool) []weather.ForecastSample {
	samples := make([]weather.ForecastSample, 0, steps)
	for i := 0; i < steps; i++ {
		ts := first.Add(time.Duration(i) * 3 * time.Hour)
		if skip != nil && skip(ts) {
			continue
		}
		samples = append(samples, weather.ForecastSample{
			Timestamp:   ts,
			Temperature: float64(i),
			Condition:   weather.Condition{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
		})
	}
	return samples
}

func dayKeys(samples []weather.ForecastSample) []string {
	keys := make([]string, len(samples))
	for i, s := range samples {
		keys[i] = DayKey(s.Timestamp, time.UTC)
	}
	return keys
}

func TestPickDaily_PrefersMidday(t *testing.T) {
	picked := PickDaily(series(start, 40, nil), time.UTC)

	require.Len(t, picked, 5)
	for _, s := range picked {
		assert.Equal(t, 12, s.Timestamp.Hour())
	}
	assert.Equal(t, []string{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08"}, dayKeys(picked))
}

func TestPickDaily_DayWithoutMiddayGetsFirstSample(t *testing.T) {
	day3 := start.AddDate(0, 0, 2)
	samples := series(start, 40, func(ts time.Time) bool {
		return DayKey(ts, time.UTC) == DayKey(day3, time.UTC) && ts.Hour() >= 11 && ts.Hour() <= 15
	})

	picked := PickDaily(samples, time.UTC)

	require.Len(t, picked, 5)
	assert.Equal(t, "2024-03-06", DayKey(picked[2].Timestamp, time.UTC))
	assert.Equal(t, day3, picked[2].Timestamp, "day 3 should use its first available sample")
	assert.True(t, sort.SliceIsSorted(picked, func(i, j int) bool {
		return picked[i].Timestamp.Before(picked[j].Timestamp)
	}))
}

func TestPickDaily_PartialFirstDay(t *testing.T) {
	evening := start.Add(18 * time.Hour)
	samples := series(evening, 4, nil)

	picked := PickDaily(samples, time.UTC)

	require.Len(t, picked, 2)
	assert.Equal(t, evening, picked[0].Timestamp)
	assert.Equal(t, []string{"2024-03-04", "2024-03-05"}, dayKeys(picked))
}

func TestPickDaily_SixDaysCappedAtFive(t *testing.T) {
	// Provider feeds usually start mid-day and spill into a sixth calendar day.
	samples := series(start.Add(18*time.Hour), 40, nil)

	picked := PickDaily(samples, time.UTC)

	assert.Len(t, picked, MaxDays)
	assert.Equal(t, []string{"2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09"}, dayKeys(picked))
}

func TestPickDaily_NeverExceedsFiveAndStaysSorted(t *testing.T) {
	for steps := 0; steps <= 60; steps++ {
		picked := PickDaily(series(start.Add(7*time.Hour), steps, nil), time.UTC)
		assert.LessOrEqual(t, len(picked), MaxDays)

		keys := dayKeys(picked)
		assert.True(t, sort.StringsAreSorted(keys), "steps=%d keys=%v", steps, keys)
		for i := 1; i < len(keys); i++ {
			assert.NotEqual(t, keys[i-1], keys[i])
		}
	}
}

func TestPickDaily_Idempotent(t *testing.T) {
	day3 := start.AddDate(0, 0, 2)
	samples := series(start, 40, func(ts time.Time) bool {
		return DayKey(ts, time.UTC) == DayKey(day3, time.UTC) && ts.Hour() >= 11 && ts.Hour() <= 15
	})

	once := PickDaily(samples, time.UTC)
	twice := PickDaily(once, time.UTC)

	assert.Equal(t, once, twice)
}

func TestPickDaily_Empty(t *testing.T) {
	assert.Empty(t, PickDaily(nil, time.UTC))
	assert.Empty(t, PickDaily([]weather.ForecastSample{}, time.UTC))
}

func TestPickDaily_DayKeyFollowsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 03:00 UTC is 12:00 in Tokyo, so the UTC-midnight sample belongs to the
	// same Tokyo day as the midday one.
	samples := series(start, 8, nil)

	utc := PickDaily(samples, time.UTC)
	local := PickDaily(samples, tokyo)

	require.Len(t, utc, 1)
	assert.Equal(t, 12, utc[0].Timestamp.Hour())
	require.Len(t, local, 2)
	assert.Equal(t, 12, local[0].Timestamp.In(tokyo).Hour())
}
