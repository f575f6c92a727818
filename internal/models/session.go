package models

import (
	"time"

	"devtrack/internal/constants"
)

// PomodoroSession is a recorded, completed timer phase. Created exactly once
// per phase completion and immutable afterwards except for deletion.
type PomodoroSession struct {
	ID          string                `json:"id"`
	LinkedID    string                `json:"linked_id,omitempty"` // topic or daily log id
	Name        string                `json:"name,omitempty"`
	DurationMin int                   `json:"duration_min"`
	CompletedAt time.Time             `json:"completed_at"`
	Type        constants.SessionType `json:"type"`
}
