package pomo

import (
	"fmt"
	"time"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/utils"
)

type PomoListCmd struct {
	Limit   int  `short:"l" help:"Maximum number of sessions to show." default:"15"`
	Work    bool `short:"w" help:"Show only work sessions."`
	ShowIDs bool `help:"Show session IDs." name:"show-ids"`
}

func (c *PomoListCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.GetAllSessions()
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}

	shown := 0
	for _, sess := range sessions {
		if c.Work && sess.Type != constants.SessionWork {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", sess.ID)
		}
		name := sess.Name
		if name == "" {
			name = "(unlinked)"
		}
		fmt.Printf("  %s  [%s] %s%s — %s\n",
			sess.CompletedAt.Format("2006-01-02 15:04"), sess.Type,
			cli.Truncate(name, 40), idStr, cli.FormatMinutes(sess.DurationMin))
	}
	return nil
}

type PomoStatsCmd struct {
	Days int `short:"d" help:"Window size in days." default:"7"`
}

func (c *PomoStatsCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *PomoStatsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	windowStart := now.AddDate(0, 0, -(c.Days - 1))
	cutoff := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, loc)

	sessions, err := ctx.Store.GetSessionsSince(cutoff.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}

	workCount, workMin, breakCount := 0, 0, 0
	perDay := map[string]int{}
	for _, sess := range sessions {
		day := sess.CompletedAt.In(loc).Format(constants.DateFormat)
		if sess.Type == constants.SessionWork {
			workCount++
			workMin += sess.DurationMin
			perDay[day]++
		} else {
			breakCount++
		}
	}

	fmt.Printf("Last %d day(s): %d work session(s) (%s focused), %d break(s)\n",
		c.Days, workCount, cli.FormatMinutes(workMin), breakCount)
	if workCount > 0 {
		fmt.Printf("Average: %.1f work session(s) per day\n", float64(workCount)/float64(c.Days))
	}

	for i := 0; i < c.Days && i < 14; i++ {
		d := cutoff.AddDate(0, 0, i).Format(constants.DateFormat)
		bar := ""
		for j := 0; j < perDay[d]; j++ {
			bar += "█"
		}
		fmt.Printf("  %s %2d %s\n", d, perDay[d], bar)
	}
	return nil
}

type PomoDeleteCmd struct {
	ID string `arg:"" help:"Session id (or unique prefix)."`
}

func (c *PomoDeleteCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.GetAllSessions()
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	id, err := cli.MatchID(c.ID, ids)
	if err != nil {
		return err
	}

	var target models.PomodoroSession
	for _, s := range sessions {
		if s.ID == id {
			target = s
			break
		}
	}
	if err := ctx.Store.DeleteSession(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	fmt.Printf("✓ Deleted %s session from %s\n", target.Type, target.CompletedAt.Format("2006-01-02 15:04"))
	return nil
}
