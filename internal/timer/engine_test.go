package timer

import (
	"testing"

	"devtrack/internal/constants"
)

func runFor(t *testing.T, e *Engine, ticks int) []Completion {
	t.Helper()
	var done []Completion
	for i := 0; i < ticks; i++ {
		gen := e.Generation()
		if c, ok := e.Tick(gen); ok {
			done = append(done, c)
		}
	}
	return done
}

func TestNewDefaults(t *testing.T) {
	e := New()
	if e.Phase() != PhaseWork {
		t.Errorf("Phase() = %v, want work", e.Phase())
	}
	if e.Remaining() != constants.DefaultWorkMinutes*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), constants.DefaultWorkMinutes*60)
	}
	if e.Running() {
		t.Error("new engine should not be running")
	}
}

func TestTickCountsDownMonotonically(t *testing.T) {
	e := New()
	e.Toggle()

	prev := e.Remaining()
	for i := 0; i < 100; i++ {
		gen := e.Generation()
		if _, ok := e.Tick(gen); ok {
			t.Fatalf("unexpected completion at tick %d", i)
		}
		if e.Remaining() > prev {
			t.Fatalf("Remaining() increased from %d to %d", prev, e.Remaining())
		}
		prev = e.Remaining()
	}
	if e.Remaining() != constants.DefaultWorkMinutes*60-100 {
		t.Errorf("Remaining() = %d after 100 ticks, want %d", e.Remaining(), constants.DefaultWorkMinutes*60-100)
	}
}

func TestProgress(t *testing.T) {
	e := New()
	e.SetDurations(1, 1)
	if got := e.Progress(); got != 0 {
		t.Errorf("Progress() = %v on a fresh phase, want 0", got)
	}

	e.Toggle()
	runFor(t, e, 15)
	if got := e.Progress(); got != 0.25 {
		t.Errorf("Progress() = %v after 15 of 60 ticks, want 0.25", got)
	}

	runFor(t, e, 30)
	if got := e.Progress(); got != 0.75 {
		t.Errorf("Progress() = %v after 45 of 60 ticks, want 0.75", got)
	}

	// Completing the phase rolls over to a fresh break phase.
	runFor(t, e, 15)
	if got := e.Progress(); got != 0 {
		t.Errorf("Progress() = %v at the break boundary, want 0", got)
	}
}

func TestTickIgnoredWhenStopped(t *testing.T) {
	e := New()
	gen := e.Generation()
	if _, ok := e.Tick(gen); ok {
		t.Error("Tick() completed on a stopped engine")
	}
	if e.Remaining() != constants.DefaultWorkMinutes*60 {
		t.Errorf("Remaining() = %d, want untouched %d", e.Remaining(), constants.DefaultWorkMinutes*60)
	}
}

func TestStaleGenerationDropped(t *testing.T) {
	e := New()
	e.Toggle()
	stale := e.Generation()

	// Stop and restart: the pending tick from the old chain must not land.
	e.Toggle()
	e.Toggle()

	before := e.Remaining()
	if _, ok := e.Tick(stale); ok {
		t.Error("stale tick produced a completion")
	}
	if e.Remaining() != before {
		t.Errorf("stale tick decremented Remaining(): %d -> %d", before, e.Remaining())
	}

	// A fresh tick still works.
	if _, ok := e.Tick(e.Generation()); ok {
		t.Error("unexpected completion on fresh tick")
	}
	if e.Remaining() != before-1 {
		t.Errorf("fresh tick: Remaining() = %d, want %d", e.Remaining(), before-1)
	}
}

func TestWorkPhaseCompletion(t *testing.T) {
	e := New()
	e.SetDurations(25, 5)
	e.Toggle()

	done := runFor(t, e, 25*60)
	if len(done) != 1 {
		t.Fatalf("got %d completions over one work phase, want exactly 1", len(done))
	}
	c := done[0]
	if c.Phase != PhaseWork {
		t.Errorf("completion phase = %v, want work", c.Phase)
	}
	if c.DurationMin != 25 {
		t.Errorf("completion duration = %d, want 25", c.DurationMin)
	}
	if e.Phase() != PhaseBreak {
		t.Errorf("Phase() = %v after work completion, want break", e.Phase())
	}
	if e.Remaining() != 5*60 {
		t.Errorf("Remaining() = %d, want break duration %d", e.Remaining(), 5*60)
	}
	if e.Running() {
		t.Error("engine should pause at the phase boundary")
	}
}

func TestBreakPhaseCompletionFlipsBack(t *testing.T) {
	e := New()
	e.SetDurations(25, 5)
	e.Toggle()
	runFor(t, e, 25*60)

	e.Toggle() // user starts the break
	done := runFor(t, e, 5*60)
	if len(done) != 1 {
		t.Fatalf("got %d completions over one break phase, want exactly 1", len(done))
	}
	if done[0].Phase != PhaseBreak {
		t.Errorf("completion phase = %v, want break", done[0].Phase)
	}
	if done[0].DurationMin != 5 {
		t.Errorf("completion duration = %d, want 5", done[0].DurationMin)
	}
	if e.Phase() != PhaseWork {
		t.Errorf("Phase() = %v after break, want work", e.Phase())
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d, want work duration %d", e.Remaining(), 25*60)
	}
}

func TestCompletionCarriesLinkAtCompletionTime(t *testing.T) {
	e := New()
	e.SetDurations(1, 1)
	e.SetLink(TopicLink("topic-a"))
	e.Toggle()

	// Re-link mid-phase: the session must be attributed to the new link.
	runFor(t, e, 30)
	e.SetLink(TaskLink("log-b"))

	done := runFor(t, e, 30)
	if len(done) != 1 {
		t.Fatalf("got %d completions, want 1", len(done))
	}
	if done[0].Link.Kind != LinkTask || done[0].Link.ID != "log-b" {
		t.Errorf("completion link = %+v, want task log-b", done[0].Link)
	}
}

func TestResetDiscardsPhase(t *testing.T) {
	e := New()
	e.Toggle()
	runFor(t, e, 500)

	e.Reset()
	if e.Running() {
		t.Error("Reset() should stop the engine")
	}
	if e.Phase() != PhaseWork {
		t.Errorf("Phase() = %v after reset, want work", e.Phase())
	}
	if e.Remaining() != constants.DefaultWorkMinutes*60 {
		t.Errorf("Remaining() = %d after reset, want %d", e.Remaining(), constants.DefaultWorkMinutes*60)
	}
}

func TestSetDurations(t *testing.T) {
	t.Run("idle engine resets visible countdown", func(t *testing.T) {
		e := New()
		e.SetDurations(50, 10)
		if e.Remaining() != 50*60 {
			t.Errorf("Remaining() = %d, want %d", e.Remaining(), 50*60)
		}
	})

	t.Run("running phase keeps its countdown", func(t *testing.T) {
		e := New()
		e.Toggle()
		runFor(t, e, 10)
		before := e.Remaining()

		e.SetDurations(50, 10)
		if e.Remaining() != before {
			t.Errorf("Remaining() = %d, want untouched %d", e.Remaining(), before)
		}
		// The new length applies to the next phase boundary.
		if e.WorkMinutes() != 50 {
			t.Errorf("WorkMinutes() = %d, want 50", e.WorkMinutes())
		}
	})

	t.Run("out of range input clamped", func(t *testing.T) {
		e := New()
		e.SetDurations(0, 10000)
		if e.WorkMinutes() != constants.MinPhaseMinutes {
			t.Errorf("WorkMinutes() = %d, want clamped %d", e.WorkMinutes(), constants.MinPhaseMinutes)
		}
		if e.BreakMinutes() != constants.MaxPhaseMinutes {
			t.Errorf("BreakMinutes() = %d, want clamped %d", e.BreakMinutes(), constants.MaxPhaseMinutes)
		}
	})
}

func TestFullPomodoroScenario(t *testing.T) {
	// Start timer with workDuration=25min, run 1500 ticks: exactly one
	// work session of 25 minutes, phase break, stopped.
	e := New()
	e.SetDurations(25, 5)
	e.Toggle()

	done := runFor(t, e, 1500)
	if len(done) != 1 {
		t.Fatalf("got %d completions, want exactly 1", len(done))
	}
	if done[0].Phase.SessionType() != constants.SessionWork {
		t.Errorf("session type = %v, want work", done[0].Phase.SessionType())
	}
	if done[0].DurationMin != 25 {
		t.Errorf("duration = %d, want 25", done[0].DurationMin)
	}
	if e.Phase() != PhaseBreak || e.Remaining() != 5*60 || e.Running() {
		t.Errorf("end state = (%v, %d, running=%v), want (break, %d, false)",
			e.Phase(), e.Remaining(), e.Running(), 5*60)
	}
}

func TestFloatingClamp(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		in   Position
		want Position
	}{
		{"inside stays put", 80, 24, Position{10, 5}, Position{10, 5}},
		{"negative clamps to origin", 80, 24, Position{-4, -2}, Position{0, 0}},
		{
			"overflow clamps to far edge",
			80, 24,
			Position{200, 100},
			Position{80 - constants.FloatingOverlayWidth, 24 - constants.FloatingOverlayHeight},
		},
		{"tiny viewport pins to origin", 10, 2, Position{5, 5}, Position{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			e.SetViewport(tt.w, tt.h)
			e.SetFloatingPosition(tt.in)
			if got := e.FloatingPosition(); got != tt.want {
				t.Errorf("FloatingPosition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewportShrinkReclamps(t *testing.T) {
	e := New()
	e.SetViewport(120, 40)
	e.SetFloatingPosition(Position{100, 30})

	e.SetViewport(60, 20)
	got := e.FloatingPosition()
	want := Position{60 - constants.FloatingOverlayWidth, 20 - constants.FloatingOverlayHeight}
	if got != want {
		t.Errorf("FloatingPosition() after shrink = %+v, want %+v", got, want)
	}
}
