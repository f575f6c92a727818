package timer

import (
	"devtrack/internal/constants"
)

// Phase is the current mode of the timer.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// SessionType returns the session type recorded for a completed phase.
func (p Phase) SessionType() constants.SessionType {
	if p == PhaseBreak {
		return constants.SessionBreak
	}
	return constants.SessionWork
}

// LinkKind discriminates what a timer is associated with.
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkTopic
	LinkTask
)

// Link associates the timer with at most one learning topic or daily-log
// task. The zero value is the unlinked state.
type Link struct {
	Kind LinkKind
	ID   string
}

// TopicLink returns a link to a learning topic.
func TopicLink(id string) Link { return Link{Kind: LinkTopic, ID: id} }

// TaskLink returns a link to a daily-log task.
func TaskLink(id string) Link { return Link{Kind: LinkTask, ID: id} }

// Position is a floating-overlay location in terminal cells.
type Position struct {
	X int
	Y int
}

// Completion is emitted exactly once when a phase finishes: the phase that
// just ended, its configured length, and the link active at the moment of
// completion. Name resolution against the link happens at completion time,
// not at start, so re-linking mid-phase names the session correctly.
type Completion struct {
	Phase       Phase
	DurationMin int
	Link        Link
}

// Engine is the single application-scoped pomodoro countdown. It is a pure
// state machine: the 1 Hz tick source lives with the caller, which invokes
// Tick once per elapsed second while the engine is running. The engine is
// not safe for concurrent use; it is designed for a single cooperative
// owner (the TUI event loop).
type Engine struct {
	phase        Phase
	remaining    int // seconds
	workMinutes  int
	breakMinutes int
	running      bool
	link         Link

	floating bool
	pos      Position
	viewW    int
	viewH    int

	// gen is bumped on every running-state transition. Tick callbacks carry
	// the generation they were scheduled under; a stale generation means the
	// chain was cancelled and the tick must be dropped, so stopping the
	// timer can never race a pending decrement.
	gen uint64
}

// New returns an idle engine with default durations, phase=work.
func New() *Engine {
	e := &Engine{
		phase:        PhaseWork,
		workMinutes:  constants.DefaultWorkMinutes,
		breakMinutes: constants.DefaultBreakMinutes,
	}
	e.remaining = e.phaseSeconds(PhaseWork)
	return e
}

func (e *Engine) phaseSeconds(p Phase) int {
	if p == PhaseBreak {
		return e.breakMinutes * 60
	}
	return e.workMinutes * 60
}

func (e *Engine) phaseMinutes(p Phase) int {
	if p == PhaseBreak {
		return e.breakMinutes
	}
	return e.workMinutes
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int { return e.remaining }

// Total returns the configured length of the current phase in seconds.
func (e *Engine) Total() int { return e.phaseSeconds(e.phase) }

// Running reports whether the countdown is live.
func (e *Engine) Running() bool { return e.running }

// Link returns the current association.
func (e *Engine) Link() Link { return e.link }

// Generation returns the current tick generation. Tick callbacks scheduled
// by the owner must carry this value back into Tick.
func (e *Engine) Generation() uint64 { return e.gen }

// WorkMinutes returns the configured work phase length.
func (e *Engine) WorkMinutes() int { return e.workMinutes }

// BreakMinutes returns the configured break phase length.
func (e *Engine) BreakMinutes() int { return e.breakMinutes }

// Progress returns elapsed phase fraction in [0,1].
func (e *Engine) Progress() float64 {
	total := e.Total()
	if total <= 0 {
		return 0
	}
	return float64(total-e.remaining) / float64(total)
}

// Toggle flips the running flag. Starting bumps the generation so the owner
// schedules a fresh tick chain; stopping bumps it so any in-flight tick is
// invalidated.
func (e *Engine) Toggle() {
	e.running = !e.running
	e.gen++
}

// Reset stops the countdown and restores an idle work phase at the full
// configured work duration. No session is recorded: an abandoned phase is
// discarded, never partially persisted.
func (e *Engine) Reset() {
	e.running = false
	e.phase = PhaseWork
	e.remaining = e.phaseSeconds(PhaseWork)
	e.gen++
}

// Tick advances the countdown by one second. gen must be the generation the
// caller captured when scheduling this tick; stale ticks are ignored. When
// the countdown would pass zero the finished phase is returned as a
// Completion, the phase flips, the new phase's duration is loaded, and the
// engine stops (pause-at-boundary: the next phase waits for the user).
func (e *Engine) Tick(gen uint64) (Completion, bool) {
	if !e.running || gen != e.gen {
		return Completion{}, false
	}
	if e.remaining > 1 {
		e.remaining--
		return Completion{}, false
	}

	done := Completion{
		Phase:       e.phase,
		DurationMin: e.phaseMinutes(e.phase),
		Link:        e.link,
	}

	if e.phase == PhaseWork {
		e.phase = PhaseBreak
	} else {
		e.phase = PhaseWork
	}
	e.remaining = e.phaseSeconds(e.phase)
	e.running = false
	e.gen++
	return done, true
}

// SetLink associates the timer with a topic or task. Sessions already
// recorded keep the name they were recorded with.
func (e *Engine) SetLink(link Link) {
	e.link = link
}

// ClearLink removes any association.
func (e *Engine) ClearLink() {
	e.link = Link{}
}

// SetDurations updates the configured phase lengths, clamping both to the
// valid range. The visible countdown is only reset when the engine is idle;
// a running phase keeps counting against its original length.
func (e *Engine) SetDurations(workMinutes, breakMinutes int) {
	e.workMinutes = clampMinutes(workMinutes)
	e.breakMinutes = clampMinutes(breakMinutes)
	if !e.running {
		e.remaining = e.phaseSeconds(e.phase)
	}
}

func clampMinutes(m int) int {
	if m < constants.MinPhaseMinutes {
		return constants.MinPhaseMinutes
	}
	if m > constants.MaxPhaseMinutes {
		return constants.MaxPhaseMinutes
	}
	return m
}
