package streak

import (
	"testing"

	"devtrack/internal/models"
)

func TestAdvance(t *testing.T) {
	t.Run("first ever completion starts streak at 1", func(t *testing.T) {
		got := Advance(models.NewStreakData(), "2025-03-10")
		if got.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", got.CurrentStreak)
		}
		if got.LongestStreak != 1 {
			t.Errorf("LongestStreak = %d, want 1", got.LongestStreak)
		}
		if got.LastCompletedDate != "2025-03-10" {
			t.Errorf("LastCompletedDate = %q, want 2025-03-10", got.LastCompletedDate)
		}
		if got.DailyActivity["2025-03-10"] != 1 {
			t.Errorf("DailyActivity = %d, want 1", got.DailyActivity["2025-03-10"])
		}
	})

	t.Run("same day repeat only builds activity", func(t *testing.T) {
		data := Advance(models.NewStreakData(), "2025-03-10")
		data = Advance(data, "2025-03-10")
		data = Advance(data, "2025-03-10")

		if data.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", data.CurrentStreak)
		}
		if data.LongestStreak != 1 {
			t.Errorf("LongestStreak = %d, want 1", data.LongestStreak)
		}
		if data.DailyActivity["2025-03-10"] != 3 {
			t.Errorf("DailyActivity = %d, want 3", data.DailyActivity["2025-03-10"])
		}
	})

	t.Run("consecutive days extend streak", func(t *testing.T) {
		data := models.NewStreakData()
		days := []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13"}
		for i, day := range days {
			data = Advance(data, day)
			if data.CurrentStreak != i+1 {
				t.Errorf("after %s: CurrentStreak = %d, want %d", day, data.CurrentStreak, i+1)
			}
		}
		if data.LongestStreak != 4 {
			t.Errorf("LongestStreak = %d, want 4", data.LongestStreak)
		}
	})

	t.Run("two day gap resets streak", func(t *testing.T) {
		data := models.NewStreakData()
		data = Advance(data, "2025-03-10")
		data = Advance(data, "2025-03-11")
		data = Advance(data, "2025-03-14")

		if data.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1 after gap", data.CurrentStreak)
		}
		if data.LongestStreak != 2 {
			t.Errorf("LongestStreak = %d, want 2 preserved", data.LongestStreak)
		}
		if data.LastCompletedDate != "2025-03-14" {
			t.Errorf("LastCompletedDate = %q, want 2025-03-14", data.LastCompletedDate)
		}
	})

	t.Run("longest never decreases", func(t *testing.T) {
		data := models.StreakData{
			CurrentStreak:     1,
			LongestStreak:     9,
			LastCompletedDate: "2025-03-10",
			DailyActivity:     map[string]int{},
		}
		data = Advance(data, "2025-03-11")
		if data.LongestStreak != 9 {
			t.Errorf("LongestStreak = %d, want 9", data.LongestStreak)
		}
		if data.CurrentStreak != 2 {
			t.Errorf("CurrentStreak = %d, want 2", data.CurrentStreak)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := models.StreakData{
			CurrentStreak:     3,
			LongestStreak:     3,
			LastCompletedDate: "2025-03-10",
			DailyActivity:     map[string]int{"2025-03-10": 2},
		}
		Advance(in, "2025-03-11")
		if in.CurrentStreak != 3 || in.DailyActivity["2025-03-11"] != 0 {
			t.Error("Advance() mutated its input")
		}
	})

	t.Run("nil histogram tolerated", func(t *testing.T) {
		got := Advance(models.StreakData{}, "2025-03-10")
		if got.DailyActivity["2025-03-10"] != 1 {
			t.Errorf("DailyActivity = %d, want 1", got.DailyActivity["2025-03-10"])
		}
	})
}

func TestActivityLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{100, 4},
	}

	for _, tt := range tests {
		if got := ActivityLevel(tt.count); got != tt.want {
			t.Errorf("ActivityLevel(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
