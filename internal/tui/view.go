package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"devtrack/internal/constants"
)

var tabTitles = []string{"Dashboard", "Logs", "Learning", "Interviews", "Goals", "Pomodoro"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = docStyle.Render(m.dashboardModel.View())
	case constants.StateLogs:
		content = docStyle.Render(m.logList.View())
	case constants.StateLearning:
		content = docStyle.Render(m.learningModel.View())
	case constants.StateInterviews:
		content = docStyle.Render(m.interviewsList.View())
	case constants.StateGoals:
		content = docStyle.Render(m.goalsModel.View())
	case constants.StatePomodoro:
		content = m.pomodoroModel.View()
	case constants.StateAddLog, constants.StateAddTopic, constants.StateAddInterview,
		constants.StateAddGoal, constants.StateEditDurations, constants.StateLinkPicker:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateMoveTimer:
		content = m.viewForState(m.previousState)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewBanner(),
		content,
		m.help.View(m),
	)

	if m.overlayVisible() {
		pos := m.engine.FloatingPosition()
		ui = composite(ui, m.pomodoroModel.Overlay(m.state == constants.StateMoveTimer), pos.X, pos.Y)
	}
	return ui
}

// viewForState renders a tab's content while a sub-state (overlay move) is
// layered on top of it.
func (m Model) viewForState(state constants.SessionState) string {
	switch state {
	case constants.StateLogs:
		return docStyle.Render(m.logList.View())
	case constants.StateLearning:
		return docStyle.Render(m.learningModel.View())
	case constants.StateInterviews:
		return docStyle.Render(m.interviewsList.View())
	case constants.StateGoals:
		return docStyle.Render(m.goalsModel.View())
	}
	return docStyle.Render(m.dashboardModel.View())
}

// overlayVisible: the detached timer floats over every tab except the
// Pomodoro tab itself, which already shows the full countdown.
func (m Model) overlayVisible() bool {
	if !m.engine.Floating() {
		return false
	}
	switch m.state {
	case constants.StatePomodoro, constants.StateConfirmDelete:
		return false
	}
	return true
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		style := inactiveTabStyle
		if int(m.activeTab()) == i {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// activeTab maps sub-states back to the tab they were opened from.
func (m Model) activeTab() constants.SessionState {
	if int(m.state) < constants.TabCount {
		return m.state
	}
	if int(m.previousState) < constants.TabCount {
		return m.previousState
	}
	return constants.StateDashboard
}

func (m Model) viewBanner() string {
	if m.formError != "" {
		return dangerStyle.Render("✗ " + m.formError)
	}
	if m.completionNote != "" {
		return warningStyle.Render(m.completionNote)
	}
	return ""
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s %q?", m.toDelete.kind, m.toDelete.label)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
