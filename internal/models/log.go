package models

import (
	"strings"
	"time"
)

// DailyLog is a single day's work log entry.
type DailyLog struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"` // YYYY-MM-DD
	Tasks        string   `json:"tasks"`
	Notes        string   `json:"notes,omitempty"`
	TimeSpentMin int      `json:"time_spent_min"`
	Tags         []string `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FirstTask returns the first line of the tasks field, used as a short
// display name when a timer session is linked to this log.
func (l DailyLog) FirstTask() string {
	line, _, _ := strings.Cut(l.Tasks, "\n")
	return strings.TrimSpace(line)
}
