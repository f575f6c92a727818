package tui

import "testing"

func TestComposite(t *testing.T) {
	base := "aaaaaaaa\nbbbbbbbb\ncccccccc"

	t.Run("splices overlay into middle", func(t *testing.T) {
		got := composite(base, "XX\nYY", 2, 1)
		want := "aaaaaaaa\nbbXXbbbb\nccYYcccc"
		if got != want {
			t.Errorf("composite() = %q, want %q", got, want)
		}
	})

	t.Run("rows outside the base are dropped", func(t *testing.T) {
		got := composite(base, "XX\nYY\nZZ", 0, 2)
		want := "aaaaaaaa\nbbbbbbbb\nXXcccccc"
		if got != want {
			t.Errorf("composite() = %q, want %q", got, want)
		}
	})

	t.Run("pads short base lines", func(t *testing.T) {
		got := composite("ab\ncd", "XX", 4, 0)
		want := "ab  XX\ncd"
		if got != want {
			t.Errorf("composite() = %q, want %q", got, want)
		}
	})

	t.Run("negative x clamps to zero", func(t *testing.T) {
		got := composite("abcd", "XX", -3, 0)
		want := "XXcd"
		if got != want {
			t.Errorf("composite() = %q, want %q", got, want)
		}
	})
}
