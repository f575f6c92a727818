package streaks

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/streak"
	"devtrack/internal/utils"
)

// One style per heatmap level, dim to bright.
var levelStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
}

type StreakShowCmd struct {
	Weeks int `short:"w" help:"Number of weeks in the heatmap." default:"12"`
}

func (c *StreakShowCmd) Validate() error {
	if c.Weeks < 1 || c.Weeks > 52 {
		return fmt.Errorf("weeks must be between 1 and 52")
	}
	return nil
}

func (c *StreakShowCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Store.GetStreakData()
	if err != nil {
		return fmt.Errorf("failed to get streak data: %w", err)
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	fmt.Printf("🔥 %s\n", cli.FormatStreak(data))
	if data.LastCompletedDate != "" {
		fmt.Printf("   last completion: %s\n", data.LastCompletedDate)
	}
	fmt.Println()
	fmt.Println(Heatmap(data.DailyActivity, today, c.Weeks))
	return nil
}

// Heatmap renders a GitHub-style activity grid ending on today's week.
// Rows are weekdays Monday..Sunday, columns are weeks oldest to newest.
func Heatmap(activity map[string]int, today string, weeks int) string {
	end, err := utils.ParseDay(today)
	if err != nil {
		return ""
	}

	// Walk back to the Monday of the current week
	weekday := (int(end.Weekday()) + 6) % 7
	monday := end.AddDate(0, 0, -weekday-(weeks-1)*7)

	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString(labels[row] + " ")
		for col := 0; col < weeks; col++ {
			day := monday.AddDate(0, 0, col*7+row)
			if day.After(end) {
				b.WriteString("  ")
				continue
			}
			count := activity[day.Format(constants.DateFormat)]
			level := streak.ActivityLevel(count)
			b.WriteString(levelStyles[level].Render("■") + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("    less ")
	for level := 0; level < 5; level++ {
		b.WriteString(levelStyles[level].Render("■") + " ")
	}
	b.WriteString("more")
	return b.String()
}

// WeekStart returns the Monday of the week containing the given day.
func WeekStart(today string) (time.Time, error) {
	t, err := utils.ParseDay(today)
	if err != nil {
		return time.Time{}, err
	}
	weekday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -weekday), nil
}
