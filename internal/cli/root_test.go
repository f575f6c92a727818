package cli

import "testing"

func TestMatchID(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}

	t.Run("exact match wins over prefix ambiguity", func(t *testing.T) {
		got, err := MatchID("abc123", ids)
		if err != nil {
			t.Fatalf("MatchID() error = %v", err)
		}
		if got != "abc123" {
			t.Errorf("MatchID() = %s, want abc123", got)
		}
	})

	t.Run("unique prefix resolves", func(t *testing.T) {
		got, err := MatchID("x", ids)
		if err != nil {
			t.Fatalf("MatchID() error = %v", err)
		}
		if got != "xyz789" {
			t.Errorf("MatchID() = %s, want xyz789", got)
		}
	})

	t.Run("ambiguous prefix errors", func(t *testing.T) {
		if _, err := MatchID("ab", ids); err == nil {
			t.Error("MatchID() with ambiguous prefix should error")
		}
	})

	t.Run("no match errors", func(t *testing.T) {
		if _, err := MatchID("zzz", ids); err == nil {
			t.Error("MatchID() with no match should error")
		}
	})
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"go", []string{"go"}},
		{"go,sql", []string{"go", "sql"}},
		{" go , sql ,", []string{"go", "sql"}},
		{",,", nil},
	}

	for _, tt := range tests {
		got := ParseTags(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{125, "2h 05m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.min); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %s, want %s", tt.min, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %s, want short", got)
	}
	if got := Truncate("a longer string", 10); got != "a longe..." {
		t.Errorf("Truncate() = %s, want a longe...", got)
	}
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate() = %s, want abc", got)
	}
}
