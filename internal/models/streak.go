package models

// StreakData is the single-row streak state: consecutive-day counters plus a
// sparse per-day activity histogram keyed by YYYY-MM-DD.
type StreakData struct {
	CurrentStreak     int            `json:"current_streak"`
	LongestStreak     int            `json:"longest_streak"`
	LastCompletedDate string         `json:"last_completed_date,omitempty"`
	DailyActivity     map[string]int `json:"daily_activity"`
}

// NewStreakData returns zeroed streak state with an allocated histogram.
func NewStreakData() StreakData {
	return StreakData{DailyActivity: map[string]int{}}
}

// Clone returns a deep copy so the pure streak functions never alias the
// caller's histogram.
func (s StreakData) Clone() StreakData {
	out := s
	out.DailyActivity = make(map[string]int, len(s.DailyActivity))
	for k, v := range s.DailyActivity {
		out.DailyActivity[k] = v
	}
	return out
}
