package goals

import (
	"fmt"

	"github.com/google/uuid"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/utils"
)

type GoalAddCmd struct {
	Title  string `arg:"" help:"Goal title."`
	Type   string `short:"t" help:"Goal cadence (weekly|monthly)." default:"weekly"`
	Target int    `short:"c" help:"Target completion count." required:""`
	Start  string `short:"s" help:"Start date (YYYY-MM-DD). Defaults to today."`
	Topics string `help:"Comma-separated linked topic ids."`
}

func (c *GoalAddCmd) Validate() error {
	if c.Type != string(constants.GoalWeekly) && c.Type != string(constants.GoalMonthly) {
		return fmt.Errorf("invalid goal type %q (expected weekly|monthly)", c.Type)
	}
	if c.Target <= 0 {
		return fmt.Errorf("target must be greater than zero")
	}
	if c.Start != "" && !utils.ValidateDay(c.Start) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Start)
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	start := c.Start
	if start == "" {
		today, err := ctx.Today()
		if err != nil {
			return err
		}
		start = today
	}

	// The period length follows the cadence
	span := 7
	if c.Type == string(constants.GoalMonthly) {
		span = 30
	}
	end, err := utils.AddDays(start, span-1)
	if err != nil {
		return err
	}

	goal := models.Goal{
		ID:           uuid.NewString(),
		Title:        c.Title,
		Type:         constants.GoalType(c.Type),
		TargetCount:  c.Target,
		LinkedTopics: cli.ParseTags(c.Topics),
		StartDate:    start,
		EndDate:      end,
	}
	if err := ctx.Store.AddGoal(goal); err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}
	fmt.Printf("✓ Added %s goal %q (%s → %s, target %d)\n", goal.Type, goal.Title, start, end, goal.TargetCount)
	return nil
}

type GoalListCmd struct {
	All     bool `short:"a" help:"Include completed goals."`
	ShowIDs bool `help:"Show goal IDs." name:"show-ids"`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}

	shown := 0
	for _, g := range goals {
		if g.Completed && !c.All {
			continue
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", g.ID)
		}
		marker := " "
		if g.Completed {
			marker = "✓"
		}
		fmt.Printf("  [%s] %s%s — %d/%d (%.0f%%, %s, ends %s)\n",
			marker, g.Title, idStr, g.CurrentCount, g.TargetCount, g.Progress()*100, g.Type, g.EndDate)
	}
	if shown == 0 {
		fmt.Println("No goals found")
	}
	return nil
}

type GoalProgressCmd struct {
	ID    string `arg:"" help:"Goal id (or unique prefix)."`
	Count int    `short:"c" help:"Number of completions to record." default:"1"`
}

func (c *GoalProgressCmd) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be greater than zero")
	}
	return nil
}

func (c *GoalProgressCmd) Run(ctx *cli.Context) error {
	goal, err := resolveGoal(ctx, c.ID)
	if err != nil {
		return err
	}
	if goal.Completed {
		fmt.Printf("Goal %q is already completed\n", goal.Title)
		return nil
	}

	goal.CurrentCount += c.Count
	justCompleted := goal.CurrentCount >= goal.TargetCount
	if justCompleted {
		goal.Completed = true
	}
	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	fmt.Printf("✓ %s — %d/%d\n", goal.Title, goal.CurrentCount, goal.TargetCount)
	if justCompleted {
		// Finishing a goal counts as a streak-qualifying completion
		data, err := ctx.RecordActivity()
		if err != nil {
			return err
		}
		fmt.Println("  🎉 Goal completed!")
		fmt.Println("  " + cli.FormatStreak(data))
	}
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal id (or unique prefix)."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := resolveGoal(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteGoal(goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	fmt.Printf("✓ Deleted goal %q\n", goal.Title)
	return nil
}

func resolveGoal(ctx *cli.Context, arg string) (models.Goal, error) {
	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to get goals: %w", err)
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	id, err := cli.MatchID(arg, ids)
	if err != nil {
		return models.Goal{}, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Goal{}, fmt.Errorf("no goal matches id %q", arg)
}
