package streak

import (
	"fmt"
	"slices"

	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/utils"
)

// RevisionDue returns the earliest revision milestone (a day offset from the
// topic's completion date) that has been reached but not yet acknowledged.
// Milestones are surfaced strictly in order: even when several have come
// due, only the smallest unacknowledged offset is returned. The second
// result is false when nothing is due, which includes every topic that is
// not completed.
func RevisionDue(topic models.LearningTopic, today string) (int, bool) {
	if topic.Status != constants.TopicCompleted || topic.CompletedAt == "" {
		return 0, false
	}

	elapsed, err := utils.DaysBetween(topic.CompletedAt, today)
	if err != nil {
		return 0, false
	}

	days := topic.RevisionDays
	if len(days) == 0 {
		days = constants.DefaultRevisionDays
	}

	for _, d := range days {
		if elapsed < d {
			continue
		}
		milestone, err := utils.AddDays(topic.CompletedAt, d)
		if err != nil {
			return 0, false
		}
		if !slices.Contains(topic.RevisedOn, milestone) {
			return d, true
		}
	}
	return 0, false
}

// AcknowledgeRevision marks the milestone at the given day offset as
// revised, recording the milestone's calendar date. Acknowledging the same
// milestone twice is a no-op: the date is added set-wise, so a double
// keypress before the UI refreshes cannot duplicate it.
func AcknowledgeRevision(topic *models.LearningTopic, day int) error {
	if topic.Status != constants.TopicCompleted || topic.CompletedAt == "" {
		return fmt.Errorf("topic %q is not completed", topic.Title)
	}

	milestone, err := utils.AddDays(topic.CompletedAt, day)
	if err != nil {
		return err
	}
	if slices.Contains(topic.RevisedOn, milestone) {
		return nil
	}
	topic.RevisedOn = append(topic.RevisedOn, milestone)
	return nil
}
