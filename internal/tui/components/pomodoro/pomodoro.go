package pomodoro

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devtrack/internal/constants"
	"devtrack/internal/timer"
)

var (
	workStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Width(constants.FloatingOverlayWidth - 2).
			Align(lipgloss.Center)

	overlayMoveStyle = overlayStyle.
				BorderForeground(lipgloss.Color("214"))
)

const progressBarWidth = 30

// Snapshot is the engine state the component renders. The engine itself
// stays with the top-level model; the component only ever sees a copy.
type Snapshot struct {
	Phase     timer.Phase
	Remaining int
	Progress  float64
	Running   bool
	Floating  bool
	LinkName  string
}

type Model struct {
	snap   Snapshot
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSnapshot(s Snapshot) {
	m.snap = s
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
	phase := phaseLabel(m.snap.Phase)

	state := "paused"
	if m.snap.Running {
		state = "running"
	}

	bar := ProgressBar(m.snap.Progress, progressBarWidth)

	lines := []string{
		phase,
		countdownStyle.Render(FormatCountdown(m.snap.Remaining)),
		bar,
		mutedStyle.Render(state),
	}
	if m.snap.LinkName != "" {
		lines = append(lines, mutedStyle.Render("linked: "+m.snap.LinkName))
	}
	lines = append(lines,
		"",
		mutedStyle.Render("space start/pause · R reset · l link · e durations · f float"),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Overlay renders the compact floating representation composited over the
// other tabs. moveMode highlights the border while the user is dragging.
func (m Model) Overlay(moveMode bool) string {
	marker := "▮▮"
	if m.snap.Running {
		marker = "▶"
	}
	line := fmt.Sprintf("%s %s %s", phaseShort(m.snap.Phase), FormatCountdown(m.snap.Remaining), marker)
	if moveMode {
		return overlayMoveStyle.Render(line)
	}
	return overlayStyle.Render(line)
}

// ProgressBar renders a fraction in [0,1] as a fixed-width block bar.
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatCountdown renders seconds as MM:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func phaseLabel(p timer.Phase) string {
	if p == timer.PhaseBreak {
		return breakStyle.Render("BREAK")
	}
	return workStyle.Render("WORK")
}

func phaseShort(p timer.Phase) string {
	if p == timer.PhaseBreak {
		return "☕"
	}
	return "🍅"
}
