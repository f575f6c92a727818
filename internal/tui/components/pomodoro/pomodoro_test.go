package pomodoro

import "testing"

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{3599, "59:59"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatCountdown(tt.seconds); got != tt.want {
			t.Errorf("FormatCountdown(%d) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{-0.2, "░░░░"},
		{1.7, "████"},
	}

	for _, tt := range tests {
		if got := ProgressBar(tt.fraction, 4); got != tt.want {
			t.Errorf("ProgressBar(%v, 4) = %s, want %s", tt.fraction, got, tt.want)
		}
	}
}
