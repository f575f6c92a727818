package utils

import "testing"

func TestAddDays(t *testing.T) {
	tests := []struct {
		day  string
		n    int
		want string
	}{
		{"2025-03-10", 1, "2025-03-11"},
		{"2025-03-10", 7, "2025-03-17"},
		{"2025-03-31", 1, "2025-04-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2025-03-10", -1, "2025-03-09"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
	}

	for _, tt := range tests {
		got, err := AddDays(tt.day, tt.n)
		if err != nil {
			t.Fatalf("AddDays(%s, %d) error = %v", tt.day, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tt.day, tt.n, got, tt.want)
		}
	}

	if _, err := AddDays("not-a-date", 1); err == nil {
		t.Error("AddDays() with invalid date should error")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want int
	}{
		{"2025-03-10", "2025-03-10", 0},
		{"2025-03-10", "2025-03-11", 1},
		{"2025-03-10", "2025-03-17", 7},
		{"2025-03-11", "2025-03-10", -1},
		{"2025-12-30", "2026-01-02", 3},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.from, tt.to)
		if err != nil {
			t.Fatalf("DaysBetween(%s, %s) error = %v", tt.from, tt.to, err)
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidateDay(t *testing.T) {
	if !ValidateDay("2025-03-10") {
		t.Error("ValidateDay(2025-03-10) = false, want true")
	}
	for _, bad := range []string{"", "03/10/2025", "2025-13-01", "yesterday"} {
		if ValidateDay(bad) {
			t.Errorf("ValidateDay(%q) = true, want false", bad)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, ok := range []string{"", "Local", "UTC", "America/New_York"} {
		if !ValidateTimezone(ok) {
			t.Errorf("ValidateTimezone(%q) = false, want true", ok)
		}
	}
	if ValidateTimezone("Mars/Olympus_Mons") {
		t.Error("ValidateTimezone(Mars/Olympus_Mons) = true, want false")
	}
}
