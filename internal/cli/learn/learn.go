package learn

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/streak"
)

type LearnAddCmd struct {
	Title       string `arg:"" help:"Topic title."`
	Description string `short:"d" help:"Topic description."`
	Tags        string `help:"Comma-separated tags."`
	Subtopics   string `short:"s" help:"Comma-separated subtopic titles."`
}

func (c *LearnAddCmd) Run(ctx *cli.Context) error {
	topic := models.LearningTopic{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Status:      constants.TopicPending,
		Tags:        cli.ParseTags(c.Tags),
		CreatedAt:   time.Now(),
	}
	for _, st := range cli.ParseTags(c.Subtopics) {
		topic.Subtopics = append(topic.Subtopics, models.Subtopic{
			ID:    uuid.NewString(),
			Title: st,
		})
	}

	if err := ctx.Store.AddTopic(topic); err != nil {
		return fmt.Errorf("failed to add topic: %w", err)
	}
	fmt.Printf("✓ Added topic %q\n", topic.Title)
	return nil
}

type LearnListCmd struct {
	Status  string `help:"Filter by status (pending|in-progress|completed)."`
	ShowIDs bool   `help:"Show topic IDs." name:"show-ids"`
}

func (c *LearnListCmd) Run(ctx *cli.Context) error {
	var filter constants.TopicStatus
	if c.Status != "" {
		var err error
		if filter, err = cli.ValidateTopicStatus(c.Status); err != nil {
			return err
		}
	}

	topics, err := ctx.Store.GetAllTopics()
	if err != nil {
		return fmt.Errorf("failed to get topics: %w", err)
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	shown := 0
	for _, topic := range topics {
		if filter != "" && topic.Status != filter {
			continue
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", topic.ID)
		}
		fmt.Printf("  [%s] %s%s", topic.Status, topic.Title, idStr)
		if day, due := streak.RevisionDue(topic, today); due {
			fmt.Printf("  ← day %d revision due", day)
		}
		fmt.Println()

		done := 0
		for _, st := range topic.Subtopics {
			if st.Completed {
				done++
			}
		}
		if len(topic.Subtopics) > 0 {
			fmt.Printf("      subtopics: %d/%d done\n", done, len(topic.Subtopics))
		}
	}
	if shown == 0 {
		fmt.Println("No topics found")
	}
	return nil
}

type LearnStartCmd struct {
	ID string `arg:"" help:"Topic id (or unique prefix)."`
}

func (c *LearnStartCmd) Run(ctx *cli.Context) error {
	topic, err := resolveTopic(ctx, c.ID)
	if err != nil {
		return err
	}
	if topic.Status == constants.TopicCompleted {
		return fmt.Errorf("topic %q is already completed", topic.Title)
	}

	topic.Status = constants.TopicInProgress
	if err := ctx.Store.UpdateTopic(topic); err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	fmt.Printf("✓ Started %q\n", topic.Title)
	return nil
}

type LearnCompleteCmd struct {
	ID string `arg:"" help:"Topic id (or unique prefix)."`
}

func (c *LearnCompleteCmd) Run(ctx *cli.Context) error {
	topic, err := resolveTopic(ctx, c.ID)
	if err != nil {
		return err
	}
	if topic.Status == constants.TopicCompleted {
		fmt.Printf("Topic %q is already completed\n", topic.Title)
		return nil
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	// Completion seeds the spaced-repetition schedule
	topic.Status = constants.TopicCompleted
	topic.CompletedAt = today
	topic.RevisionDays = append([]int(nil), constants.DefaultRevisionDays...)
	topic.RevisedOn = nil
	if err := ctx.Store.UpdateTopic(topic); err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}

	data, err := ctx.RecordActivity()
	if err != nil {
		return err
	}

	fmt.Printf("✓ Completed %q — revisions due after %v day(s)\n", topic.Title, topic.RevisionDays)
	fmt.Println("  " + cli.FormatStreak(data))
	return nil
}

type LearnUndoCmd struct {
	ID string `arg:"" help:"Topic id (or unique prefix)."`
}

func (c *LearnUndoCmd) Run(ctx *cli.Context) error {
	topic, err := resolveTopic(ctx, c.ID)
	if err != nil {
		return err
	}
	if topic.Status != constants.TopicCompleted {
		return fmt.Errorf("topic %q is not completed", topic.Title)
	}
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	if topic.CompletedAt != today {
		return fmt.Errorf("completion can only be undone on the day it was recorded (%s)", topic.CompletedAt)
	}

	// Reverting completion clears the revision schedule entirely
	topic.Status = constants.TopicInProgress
	topic.CompletedAt = ""
	topic.RevisionDays = nil
	topic.RevisedOn = nil
	if err := ctx.Store.UpdateTopic(topic); err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	fmt.Printf("✓ Reverted %q to in-progress\n", topic.Title)
	return nil
}

type LearnDueCmd struct{}

func (c *LearnDueCmd) Run(ctx *cli.Context) error {
	topics, err := ctx.Store.GetAllTopics()
	if err != nil {
		return fmt.Errorf("failed to get topics: %w", err)
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	due := 0
	for _, topic := range topics {
		if day, ok := streak.RevisionDue(topic, today); ok {
			fmt.Printf("  %s — day %d revision due (completed %s)\n", topic.Title, day, topic.CompletedAt)
			due++
		}
	}
	if due == 0 {
		fmt.Println("No revisions due today")
	}
	return nil
}

type LearnReviseCmd struct {
	ID string `arg:"" help:"Topic id (or unique prefix)."`
}

func (c *LearnReviseCmd) Run(ctx *cli.Context) error {
	topic, err := resolveTopic(ctx, c.ID)
	if err != nil {
		return err
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	day, ok := streak.RevisionDue(topic, today)
	if !ok {
		fmt.Printf("No revision due for %q\n", topic.Title)
		return nil
	}

	if err := streak.AcknowledgeRevision(&topic, day); err != nil {
		return err
	}
	if err := ctx.Store.UpdateTopic(topic); err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}

	data, err := ctx.RecordActivity()
	if err != nil {
		return err
	}

	fmt.Printf("✓ Revised %q (day %d milestone)\n", topic.Title, day)
	if next, more := streak.RevisionDue(topic, today); more {
		fmt.Printf("  day %d revision is also due\n", next)
	}
	fmt.Println("  " + cli.FormatStreak(data))
	return nil
}

type LearnCheckCmd struct {
	ID       string `arg:"" help:"Topic id (or unique prefix)."`
	Subtopic string `arg:"" help:"Subtopic title (or unique prefix)."`
}

func (c *LearnCheckCmd) Run(ctx *cli.Context) error {
	topic, err := resolveTopic(ctx, c.ID)
	if err != nil {
		return err
	}

	titles := make([]string, len(topic.Subtopics))
	for i, st := range topic.Subtopics {
		titles[i] = st.Title
	}
	title, err := cli.MatchID(c.Subtopic, titles)
	if err != nil {
		return err
	}

	for i := range topic.Subtopics {
		if topic.Subtopics[i].Title != title {
			continue
		}
		topic.Subtopics[i].Completed = !topic.Subtopics[i].Completed
		if topic.Subtopics[i].Completed {
			now := time.Now().Format(time.RFC3339)
			topic.Subtopics[i].CompletedAt = &now
			fmt.Printf("✓ Checked off %q\n", title)
		} else {
			topic.Subtopics[i].CompletedAt = nil
			fmt.Printf("✓ Unchecked %q\n", title)
		}
		break
	}

	if err := ctx.Store.UpdateTopic(topic); err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	return nil
}

type LearnDeleteCmd struct {
	ID string `arg:"" help:"Topic id (or unique prefix)."`
}

func (c *LearnDeleteCmd) Run(ctx *cli.Context) error {
	topic, err := resolveTopic(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTopic(topic.ID); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	fmt.Printf("✓ Deleted topic %q\n", topic.Title)
	return nil
}

func resolveTopic(ctx *cli.Context, arg string) (models.LearningTopic, error) {
	topics, err := ctx.Store.GetAllTopics()
	if err != nil {
		return models.LearningTopic{}, fmt.Errorf("failed to get topics: %w", err)
	}
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	id, err := cli.MatchID(arg, ids)
	if err != nil {
		return models.LearningTopic{}, err
	}
	for _, t := range topics {
		if t.ID == id {
			return t, nil
		}
	}
	return models.LearningTopic{}, fmt.Errorf("no topic matches id %q", arg)
}
