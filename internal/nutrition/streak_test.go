package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(tz *time.Location, offset int) string {
	return time.Date(2023, 6, 15, 12, 0, 0, 0, tz).AddDate(0, 0, offset).Format(DateLayout)
}

func TestComputeStreakConsecutiveDays(t *testing.T) {
	tz := time.UTC
	today := time.Date(2023, 6, 15, 12, 0, 0, 0, tz)

	completed := CompletedDates([]string{day(tz, 0), day(tz, -1)})
	assert.Equal(t, 2, ComputeStreak(completed, tz, today))

	completed = CompletedDates([]string{day(tz, 0), day(tz, -1), day(tz, -2), day(tz, -3)})
	assert.Equal(t, 4, ComputeStreak(completed, tz, today))
}

func TestComputeStreakGapBreaksChain(t *testing.T) {
	tz := time.UTC
	today := time.Date(2023, 6, 15, 12, 0, 0, 0, tz)

	// only two days ago logged: today is missing, streak is zero
	completed := CompletedDates([]string{day(tz, -2)})
	assert.Equal(t, 0, ComputeStreak(completed, tz, today))

	// today and two days ago, but not yesterday
	completed = CompletedDates([]string{day(tz, 0), day(tz, -2)})
	assert.Equal(t, 1, ComputeStreak(completed, tz, today))
}

func TestComputeStreakEmptySet(t *testing.T) {
	today := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, ComputeStreak(CompletedDates(nil), time.UTC, today))
}

func TestComputeStreakTimezoneBoundary(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	assert.NoError(t, err)

	// 2023-06-15 20:00 UTC is already 2023-06-16 in Sydney
	instant := time.Date(2023, 6, 15, 20, 0, 0, 0, time.UTC)
	completed := CompletedDates([]string{"2023-06-16", "2023-06-15"})

	assert.Equal(t, 2, ComputeStreak(completed, sydney, instant))
	// evaluated in UTC the same instant is still the 15th
	assert.Equal(t, 1, ComputeStreak(completed, time.UTC, instant))
}

func TestComputeStreakNilTimezoneDefaultsToUTC(t *testing.T) {
	today := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	completed := CompletedDates([]string{"2023-06-15"})
	assert.Equal(t, 1, ComputeStreak(completed, nil, today))
}

func TestComputeStreakMonthBoundary(t *testing.T) {
	tz := time.UTC
	today := time.Date(2023, 3, 1, 9, 0, 0, 0, tz)
	completed := CompletedDates([]string{"2023-03-01", "2023-02-28", "2023-02-27"})
	assert.Equal(t, 3, ComputeStreak(completed, tz, today))
}
