package streak

import (
	"testing"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func completedTopic(completedAt string, revisedOn ...string) models.LearningTopic {
	return models.LearningTopic{
		ID:           "t1",
		Title:        "goroutine scheduling",
		Status:       constants.TopicCompleted,
		CompletedAt:  completedAt,
		RevisionDays: []int{1, 3, 7},
		RevisedOn:    revisedOn,
	}
}

func TestRevisionDue(t *testing.T) {
	tests := []struct {
		name    string
		topic   models.LearningTopic
		today   string
		want    int
		wantDue bool
	}{
		{
			name:  "not completed topic never due",
			topic: models.LearningTopic{Status: constants.TopicInProgress},
			today: "2025-03-20",
		},
		{
			name:  "completed without date never due",
			topic: models.LearningTopic{Status: constants.TopicCompleted},
			today: "2025-03-20",
		},
		{
			name:  "same day nothing due",
			topic: completedTopic("2025-03-10"),
			today: "2025-03-10",
		},
		{
			name:    "day 1 due",
			topic:   completedTopic("2025-03-10"),
			today:   "2025-03-11",
			want:    1,
			wantDue: true,
		},
		{
			name:  "day 1 acknowledged, day 3 not reached",
			topic: completedTopic("2025-03-10", "2025-03-11"),
			today: "2025-03-11",
		},
		{
			name:    "day 1 acknowledged, day 3 reached",
			topic:   completedTopic("2025-03-10", "2025-03-11"),
			today:   "2025-03-13",
			want:    3,
			wantDue: true,
		},
		{
			name:    "all milestones reached, earliest unacknowledged wins",
			topic:   completedTopic("2025-03-10"),
			today:   "2025-03-20",
			want:    1,
			wantDue: true,
		},
		{
			name:    "only last milestone open",
			topic:   completedTopic("2025-03-10", "2025-03-11", "2025-03-13"),
			today:   "2025-03-20",
			want:    7,
			wantDue: true,
		},
		{
			name:  "all acknowledged",
			topic: completedTopic("2025-03-10", "2025-03-11", "2025-03-13", "2025-03-17"),
			today: "2025-03-20",
		},
		{
			name: "empty revision days falls back to defaults",
			topic: models.LearningTopic{
				Status:      constants.TopicCompleted,
				CompletedAt: "2025-03-10",
			},
			today:   "2025-03-11",
			want:    1,
			wantDue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, due := RevisionDue(tt.topic, tt.today)
			if due != tt.wantDue {
				t.Fatalf("RevisionDue() due = %v, want %v", due, tt.wantDue)
			}
			if got != tt.want {
				t.Errorf("RevisionDue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAcknowledgeRevision(t *testing.T) {
	t.Run("records milestone date", func(t *testing.T) {
		topic := completedTopic("2025-03-10")
		if err := AcknowledgeRevision(&topic, 1); err != nil {
			t.Fatalf("AcknowledgeRevision() error = %v", err)
		}
		if len(topic.RevisedOn) != 1 || topic.RevisedOn[0] != "2025-03-11" {
			t.Errorf("RevisedOn = %v, want [2025-03-11]", topic.RevisedOn)
		}
	})

	t.Run("idempotent on repeat", func(t *testing.T) {
		topic := completedTopic("2025-03-10")
		if err := AcknowledgeRevision(&topic, 1); err != nil {
			t.Fatalf("first acknowledge: %v", err)
		}
		if err := AcknowledgeRevision(&topic, 1); err != nil {
			t.Fatalf("second acknowledge: %v", err)
		}
		if len(topic.RevisedOn) != 1 {
			t.Errorf("RevisedOn = %v, want a single entry", topic.RevisedOn)
		}
	})

	t.Run("acknowledge then query advances to next milestone", func(t *testing.T) {
		topic := completedTopic("2025-03-10")
		today := "2025-03-11"

		day, due := RevisionDue(topic, today)
		if !due || day != 1 {
			t.Fatalf("RevisionDue() = (%d, %v), want (1, true)", day, due)
		}
		if err := AcknowledgeRevision(&topic, day); err != nil {
			t.Fatalf("AcknowledgeRevision() error = %v", err)
		}
		if _, due := RevisionDue(topic, today); due {
			t.Error("day 3 not reached yet, nothing should be due")
		}

		if day, due := RevisionDue(topic, "2025-03-13"); !due || day != 3 {
			t.Errorf("RevisionDue() at D+3 = (%d, %v), want (3, true)", day, due)
		}
	})

	t.Run("rejects non-completed topic", func(t *testing.T) {
		topic := models.LearningTopic{Title: "x", Status: constants.TopicPending}
		if err := AcknowledgeRevision(&topic, 1); err == nil {
			t.Error("AcknowledgeRevision() on pending topic should error")
		}
	})
}
