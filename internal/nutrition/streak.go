package nutrition

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// DefaultStreakWindowDays bounds how far back the repository fetches candidate
// logs for the local streak fallback. The window caps the maximum reportable
// streak, so it is a parameter rather than a hidden constant.
const DefaultStreakWindowDays = 30

// CompletedDates builds the streak input set from YYYY-MM-DD date strings.
func CompletedDates(dates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// ComputeStreak counts consecutive completed days ending at today, evaluated
// in the given reference timezone. The walk goes backward one calendar day at
// a time and stops at the first gap; a today with no completion is a streak
// of zero.
func ComputeStreak(completed map[string]struct{}, tz *time.Location, today time.Time) int {
	if tz == nil {
		tz = time.UTC
	}
	cur := today.In(tz)
	streak := 0
	for {
		if _, ok := completed[cur.Format(DateLayout)]; !ok {
			return streak
		}
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
}
