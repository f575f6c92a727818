// Package streak holds the pure streak and spaced-repetition calculations.
// Nothing in here touches storage or the clock; callers pass "today" in as
// a YYYY-MM-DD string so every rule is unit-testable.
package streak

import (
	"devtrack/internal/models"
	"devtrack/internal/utils"
)

// Advance applies one qualifying completion on the given day and returns the
// updated streak state. Rules:
//   - Same day as the last completion: only the activity count grows, so
//     finishing many items in one day cannot inflate the streak.
//   - Yesterday, or no prior completion: the streak extends by one.
//   - Any longer gap: the streak restarts at 1.
//
// longestStreak is the running maximum and never decreases.
func Advance(data models.StreakData, today string) models.StreakData {
	out := data.Clone()
	if out.DailyActivity == nil {
		out.DailyActivity = map[string]int{}
	}

	if out.LastCompletedDate == today {
		out.DailyActivity[today]++
		return out
	}

	yesterday, err := utils.AddDays(today, -1)
	if err != nil {
		// Unparseable input day: leave the counters alone rather than
		// corrupt them.
		return out
	}

	switch out.LastCompletedDate {
	case yesterday, "":
		out.CurrentStreak++
	default:
		out.CurrentStreak = 1
	}
	if out.CurrentStreak > out.LongestStreak {
		out.LongestStreak = out.CurrentStreak
	}
	out.LastCompletedDate = today
	out.DailyActivity[today]++
	return out
}

// ActivityLevel buckets a day's activity count into the 0-4 heatmap scale.
func ActivityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count == 2:
		return 2
	case count <= 4:
		return 3
	default:
		return 4
	}
}
