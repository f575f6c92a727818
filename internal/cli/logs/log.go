package logs

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"devtrack/internal/cli"
	"devtrack/internal/models"
	"devtrack/internal/utils"
)

type LogAddCmd struct {
	Tasks string `arg:"" help:"What you worked on. Use \\n or multiple --task flags for several items."`
	Date  string `short:"d" help:"Log date (YYYY-MM-DD). Defaults to today."`
	Notes string `short:"n" help:"Free-form notes."`
	Time  int    `short:"t" help:"Time spent in minutes." default:"0"`
	Tags  string `help:"Comma-separated tags."`
}

func (c *LogAddCmd) Validate() error {
	if c.Time < 0 {
		return fmt.Errorf("time spent cannot be negative")
	}
	if c.Date != "" && !utils.ValidateDay(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		today, err := ctx.Today()
		if err != nil {
			return err
		}
		date = today
	}

	log := models.DailyLog{
		ID:           uuid.NewString(),
		Date:         date,
		Tasks:        c.Tasks,
		Notes:        c.Notes,
		TimeSpentMin: c.Time,
		Tags:         cli.ParseTags(c.Tags),
		CreatedAt:    time.Now(),
	}
	if err := ctx.Store.AddDailyLog(log); err != nil {
		return fmt.Errorf("failed to add log: %w", err)
	}

	data, err := ctx.RecordActivity()
	if err != nil {
		return err
	}

	fmt.Printf("✓ Logged %s for %s\n", cli.Truncate(log.FirstTask(), 50), date)
	fmt.Println("  " + cli.FormatStreak(data))
	return nil
}

type LogListCmd struct {
	Date    string `short:"d" help:"Show logs for a specific date (YYYY-MM-DD)."`
	Limit   int    `short:"l" help:"Maximum number of logs to show." default:"10"`
	ShowIDs bool   `help:"Show log IDs." name:"show-ids"`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	var logs []models.DailyLog
	var err error
	if c.Date != "" {
		logs, err = ctx.Store.GetDailyLogsForDate(c.Date)
	} else {
		logs, err = ctx.Store.GetAllDailyLogs()
	}
	if err != nil {
		return fmt.Errorf("failed to get logs: %w", err)
	}
	if len(logs) == 0 {
		fmt.Println("No logs found")
		return nil
	}

	if c.Limit > 0 && len(logs) > c.Limit {
		logs = logs[:c.Limit]
	}

	for _, log := range logs {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", log.ID)
		}
		fmt.Printf("%s%s - %s", log.Date, idStr, cli.Truncate(log.FirstTask(), 60))
		if log.TimeSpentMin > 0 {
			fmt.Printf(" [%s]", cli.FormatMinutes(log.TimeSpentMin))
		}
		fmt.Println()
		if log.Notes != "" {
			fmt.Printf("    %s\n", cli.Truncate(log.Notes, 76))
		}
	}
	return nil
}

type LogEditCmd struct {
	ID    string `arg:"" help:"Log id (or unique prefix)."`
	Tasks string `help:"Replace the task text."`
	Notes string `short:"n" help:"Replace the notes."`
	Time  int    `short:"t" help:"Replace time spent in minutes." default:"-1"`
	Tags  string `help:"Replace the comma-separated tags."`
}

func (c *LogEditCmd) Run(ctx *cli.Context) error {
	log, err := resolveLog(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Tasks != "" {
		log.Tasks = c.Tasks
	}
	if c.Notes != "" {
		log.Notes = c.Notes
	}
	if c.Time >= 0 {
		log.TimeSpentMin = c.Time
	}
	if c.Tags != "" {
		log.Tags = cli.ParseTags(c.Tags)
	}

	if err := ctx.Store.UpdateDailyLog(log); err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	fmt.Printf("✓ Updated log for %s\n", log.Date)
	return nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Log id (or unique prefix)."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	log, err := resolveLog(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteDailyLog(log.ID); err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	fmt.Printf("✓ Deleted log for %s\n", log.Date)
	return nil
}

func resolveLog(ctx *cli.Context, arg string) (models.DailyLog, error) {
	logs, err := ctx.Store.GetAllDailyLogs()
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("failed to get logs: %w", err)
	}
	ids := make([]string, len(logs))
	for i, l := range logs {
		ids[i] = l.ID
	}
	id, err := cli.MatchID(arg, ids)
	if err != nil {
		return models.DailyLog{}, err
	}
	for _, l := range logs {
		if l.ID == id {
			return l, nil
		}
	}
	return models.DailyLog{}, fmt.Errorf("no record matches id %q", arg)
}
