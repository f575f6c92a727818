package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devtrack/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(2)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	streakNumberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40")).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// DueRevision is one topic with a revision milestone reached today.
type DueRevision struct {
	Title string
	Day   int
}

type Model struct {
	streak   models.StreakData
	heatmap  string
	due      []DueRevision
	focusMin int
	today    string
	width    int
	height   int
}

func New() Model {
	return Model{}
}

// SetData replaces everything the dashboard renders. Called after any
// store mutation that can move the streak, the histogram, or the due list.
func (m *Model) SetData(streak models.StreakData, heatmap string, due []DueRevision, focusMin int, today string) {
	m.streak = streak
	m.heatmap = heatmap
	m.due = due
	m.focusMin = focusMin
	m.today = today
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	streakCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Streak"),
		fmt.Sprintf("current  %s", streakNumberStyle.Render(fmt.Sprintf("%d day(s)", m.streak.CurrentStreak))),
		fmt.Sprintf("longest  %s", streakNumberStyle.Render(fmt.Sprintf("%d day(s)", m.streak.LongestStreak))),
	))

	focusCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Focus today"),
		streakNumberStyle.Render(formatMinutes(m.focusMin)),
		mutedStyle.Render(m.today),
	))

	cards := lipgloss.JoinHorizontal(lipgloss.Top, streakCard, focusCard)

	var due string
	if len(m.due) == 0 {
		due = mutedStyle.Render("No revisions due today.")
	} else {
		var b strings.Builder
		for i, d := range m.due {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(dueStyle.Render(fmt.Sprintf("● %s (day %d revision)", d.Title, d.Day)))
		}
		due = b.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		cardTitleStyle.Render("Revisions due"),
		due,
		"",
		cardTitleStyle.Render("Activity"),
		m.heatmap,
	)
}

func formatMinutes(min int) string {
	if min >= 60 {
		return fmt.Sprintf("%dh %02dm", min/60, min%60)
	}
	return fmt.Sprintf("%dm", min)
}
