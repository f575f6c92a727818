package models

import (
	"time"

	"devtrack/internal/constants"
)

// InterviewEvent is one entry in an interview's timeline.
type InterviewEvent struct {
	ID    string `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

// Interview tracks a single application through the pipeline.
type Interview struct {
	ID          string                    `json:"id"`
	Company     string                    `json:"company"`
	Role        string                    `json:"role"`
	Status      constants.InterviewStatus `json:"status"`
	Notes       string                    `json:"notes,omitempty"`
	AppliedDate string                    `json:"applied_date"` // YYYY-MM-DD
	LastUpdated time.Time                 `json:"last_updated"`
	Timeline    []InterviewEvent          `json:"timeline,omitempty"`
}
