package errors

import (
	stderrors "errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}
	if got := Format(stderrors.New("database unreachable")); got != "Error: database unreachable" {
		t.Errorf("Format() = %q, want %q", got, "Error: database unreachable")
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("no topic matches id %q", "abc")
	want := `Error: no topic matches id "abc"`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
