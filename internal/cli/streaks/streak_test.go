package streaks

import (
	"strings"
	"testing"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2025-03-10", "2025-03-10"}, // a Monday
		{"2025-03-12", "2025-03-10"}, // Wednesday
		{"2025-03-16", "2025-03-10"}, // Sunday stays in the same ISO week
		{"2025-03-17", "2025-03-17"}, // next Monday
	}

	for _, tt := range tests {
		got, err := WeekStart(tt.day)
		if err != nil {
			t.Fatalf("WeekStart(%s) error = %v", tt.day, err)
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.day, got.Format("2006-01-02"), tt.want)
		}
	}

	if _, err := WeekStart("bogus"); err == nil {
		t.Error("WeekStart() with invalid date should error")
	}
}

func TestHeatmap(t *testing.T) {
	activity := map[string]int{
		"2025-03-10": 2,
		"2025-03-11": 5,
	}

	out := Heatmap(activity, "2025-03-12", 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("Heatmap() has %d lines, want 8 (7 weekday rows + legend)", len(lines))
	}
	for i, label := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		if !strings.HasPrefix(lines[i], label) {
			t.Errorf("row %d = %q, want prefix %s", i, lines[i], label)
		}
	}
	if !strings.Contains(lines[7], "less") || !strings.Contains(lines[7], "more") {
		t.Errorf("legend row = %q, want less/more markers", lines[7])
	}

	if Heatmap(activity, "not-a-date", 4) != "" {
		t.Error("Heatmap() with invalid today should return empty string")
	}
}
