package models

import "devtrack/internal/constants"

// Goal is a weekly or monthly target count, optionally linked to topics.
type Goal struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Type         constants.GoalType `json:"type"`
	TargetCount  int                `json:"target_count"`
	CurrentCount int                `json:"current_count"`
	LinkedTopics []string           `json:"linked_topics,omitempty"`
	StartDate    string             `json:"start_date"` // YYYY-MM-DD
	EndDate      string             `json:"end_date"`   // YYYY-MM-DD
	Completed    bool               `json:"completed"`
}

// Progress returns completion as a fraction in [0,1].
func (g Goal) Progress() float64 {
	if g.TargetCount <= 0 {
		return 0
	}
	p := float64(g.CurrentCount) / float64(g.TargetCount)
	if p > 1 {
		return 1
	}
	return p
}
