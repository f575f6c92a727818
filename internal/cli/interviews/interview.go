package interviews

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/utils"
)

type InterviewAddCmd struct {
	Company string `arg:"" help:"Company name."`
	Role    string `arg:"" help:"Role applied for."`
	Date    string `short:"d" help:"Application date (YYYY-MM-DD). Defaults to today."`
	Notes   string `short:"n" help:"Free-form notes."`
}

func (c *InterviewAddCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDay(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *InterviewAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		today, err := ctx.Today()
		if err != nil {
			return err
		}
		date = today
	}

	iv := models.Interview{
		ID:          uuid.NewString(),
		Company:     c.Company,
		Role:        c.Role,
		Status:      constants.InterviewApplied,
		Notes:       c.Notes,
		AppliedDate: date,
		LastUpdated: time.Now(),
		Timeline: []models.InterviewEvent{{
			ID:   uuid.NewString(),
			Date: date,
			Type: string(constants.InterviewApplied),
		}},
	}
	if err := ctx.Store.AddInterview(iv); err != nil {
		return fmt.Errorf("failed to add interview: %w", err)
	}
	fmt.Printf("✓ Tracking %s at %s (applied %s)\n", iv.Role, iv.Company, date)
	return nil
}

type InterviewListCmd struct {
	Status  string `help:"Filter by status (applied|hr|technical|offer|rejected)."`
	ShowIDs bool   `help:"Show interview IDs." name:"show-ids"`
}

func (c *InterviewListCmd) Run(ctx *cli.Context) error {
	var filter constants.InterviewStatus
	if c.Status != "" {
		var err error
		if filter, err = cli.ValidateInterviewStatus(c.Status); err != nil {
			return err
		}
	}

	interviews, err := ctx.Store.GetAllInterviews()
	if err != nil {
		return fmt.Errorf("failed to get interviews: %w", err)
	}

	shown := 0
	for _, iv := range interviews {
		if filter != "" && iv.Status != filter {
			continue
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", iv.ID)
		}
		fmt.Printf("  [%s] %s — %s%s (applied %s)\n", iv.Status, iv.Company, iv.Role, idStr, iv.AppliedDate)
	}
	if shown == 0 {
		fmt.Println("No interviews found")
	}
	return nil
}

type InterviewUpdateCmd struct {
	ID     string `arg:"" help:"Interview id (or unique prefix)."`
	Status string `arg:"" help:"New status (applied|hr|technical|offer|rejected)."`
	Notes  string `short:"n" help:"Notes for this stage."`
	Date   string `short:"d" help:"Event date (YYYY-MM-DD). Defaults to today."`
}

func (c *InterviewUpdateCmd) Run(ctx *cli.Context) error {
	status, err := cli.ValidateInterviewStatus(c.Status)
	if err != nil {
		return err
	}

	iv, err := resolveInterview(ctx, c.ID)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		if date, err = ctx.Today(); err != nil {
			return err
		}
	} else if !utils.ValidateDay(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	// Every status change appends a timeline event
	iv.Status = status
	iv.LastUpdated = time.Now()
	iv.Timeline = append(iv.Timeline, models.InterviewEvent{
		ID:    uuid.NewString(),
		Date:  date,
		Type:  string(status),
		Notes: c.Notes,
	})
	if err := ctx.Store.UpdateInterview(iv); err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	fmt.Printf("✓ %s at %s → %s\n", iv.Role, iv.Company, status)
	return nil
}

type InterviewEventCmd struct {
	ID    string `arg:"" help:"Interview id (or unique prefix)."`
	Type  string `arg:"" help:"Event type (e.g. phone-screen, onsite, followup)."`
	Notes string `short:"n" help:"Event notes."`
	Date  string `short:"d" help:"Event date (YYYY-MM-DD). Defaults to today."`
}

// Run appends a timeline event without changing the pipeline stage.
func (c *InterviewEventCmd) Run(ctx *cli.Context) error {
	iv, err := resolveInterview(ctx, c.ID)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		if date, err = ctx.Today(); err != nil {
			return err
		}
	} else if !utils.ValidateDay(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	iv.LastUpdated = time.Now()
	iv.Timeline = append(iv.Timeline, models.InterviewEvent{
		ID:    uuid.NewString(),
		Date:  date,
		Type:  c.Type,
		Notes: c.Notes,
	})
	if err := ctx.Store.UpdateInterview(iv); err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	fmt.Printf("✓ Added %s event to %s at %s\n", c.Type, iv.Role, iv.Company)
	return nil
}

type InterviewTimelineCmd struct {
	ID string `arg:"" help:"Interview id (or unique prefix)."`
}

func (c *InterviewTimelineCmd) Run(ctx *cli.Context) error {
	iv, err := resolveInterview(ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s [%s]\n", iv.Company, iv.Role, iv.Status)
	if iv.Notes != "" {
		fmt.Printf("  %s\n", iv.Notes)
	}
	for _, ev := range iv.Timeline {
		fmt.Printf("  %s  %s", ev.Date, ev.Type)
		if ev.Notes != "" {
			fmt.Printf("  (%s)", cli.Truncate(ev.Notes, 60))
		}
		fmt.Println()
	}
	return nil
}

type InterviewDeleteCmd struct {
	ID string `arg:"" help:"Interview id (or unique prefix)."`
}

func (c *InterviewDeleteCmd) Run(ctx *cli.Context) error {
	iv, err := resolveInterview(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteInterview(iv.ID); err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	fmt.Printf("✓ Deleted %s at %s\n", iv.Role, iv.Company)
	return nil
}

func resolveInterview(ctx *cli.Context, arg string) (models.Interview, error) {
	interviews, err := ctx.Store.GetAllInterviews()
	if err != nil {
		return models.Interview{}, fmt.Errorf("failed to get interviews: %w", err)
	}
	ids := make([]string, len(interviews))
	for i, iv := range interviews {
		ids[i] = iv.ID
	}
	id, err := cli.MatchID(arg, ids)
	if err != nil {
		return models.Interview{}, err
	}
	for _, iv := range interviews {
		if iv.ID == id {
			return iv, nil
		}
	}
	return models.Interview{}, fmt.Errorf("no interview matches id %q", arg)
}
