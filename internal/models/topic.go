package models

import (
	"time"

	"devtrack/internal/constants"
)

// Subtopic is a checklist item nested under a learning topic.
type Subtopic struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at,omitempty"` // RFC3339 timestamp
}

// LearningTopic is a tracked topic moving through pending → in-progress →
// completed, with spaced-repetition revision bookkeeping after completion.
type LearningTopic struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Status      constants.TopicStatus `json:"status"`
	Tags        []string              `json:"tags,omitempty"`
	Subtopics   []Subtopic            `json:"subtopics,omitempty"`

	// CompletedAt is the YYYY-MM-DD day the topic was marked completed.
	// Empty while the topic is pending or in progress.
	CompletedAt string `json:"completed_at,omitempty"`

	// RevisionDays are the day offsets after CompletedAt at which a revision
	// is due, ascending. Seeded with [1,3,7] on completion.
	RevisionDays []int `json:"revision_days,omitempty"`

	// RevisedOn holds one YYYY-MM-DD entry per acknowledged revision
	// milestone. Never longer than RevisionDays.
	RevisedOn []string `json:"revised_on,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the topic still counts as being worked on.
func (t LearningTopic) Active() bool {
	return t.Status == constants.TopicPending || t.Status == constants.TopicInProgress
}
