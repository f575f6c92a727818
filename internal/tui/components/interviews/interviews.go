package interviews

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

type AddInterviewMsg struct{}

// AdvanceInterviewMsg moves the interview to the next pipeline stage.
type AdvanceInterviewMsg struct {
	ID string
}

type RejectInterviewMsg struct {
	ID string
}

type DeleteInterviewMsg struct {
	ID string
}

type Item struct {
	Interview models.Interview
}

func (i Item) Title() string {
	marker := "●"
	switch i.Interview.Status {
	case constants.InterviewOffer:
		marker = "★"
	case constants.InterviewRejected:
		marker = "✗"
	}
	return fmt.Sprintf("%s %s — %s", marker, i.Interview.Company, i.Interview.Role)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s  applied %s  %d event(s)",
		i.Interview.Status, i.Interview.AppliedDate, len(i.Interview.Timeline))
}

func (i Item) FilterValue() string { return i.Interview.Company }

// NextStage returns the stage after s in the pipeline, or s itself when the
// pipeline is already terminal.
func NextStage(s constants.InterviewStatus) constants.InterviewStatus {
	switch s {
	case constants.InterviewApplied:
		return constants.InterviewHR
	case constants.InterviewHR:
		return constants.InterviewTechnical
	case constants.InterviewTechnical:
		return constants.InterviewOffer
	}
	return s
}

type KeyMap struct {
	Add     key.Binding
	Advance key.Binding
	Reject  key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add interview"),
		),
		Advance: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next stage"),
		),
		Reject: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reject"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(interviews []models.Interview, width, height int) Model {
	l := list.New(toItems(interviews), list.NewDefaultDelegate(), width, height)
	l.Title = "Interviews"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Advance, keys.Reject, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Advance, keys.Reject, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(interviews []models.Interview) []list.Item {
	items := make([]list.Item, len(interviews))
	for i, iv := range interviews {
		items[i] = Item{Interview: iv}
	}
	return items
}

func (m *Model) SetInterviews(interviews []models.Interview) {
	m.list.SetItems(toItems(interviews))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddInterviewMsg{} }
		case key.Matches(msg, m.keys.Advance):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if NextStage(i.Interview.Status) != i.Interview.Status {
					return m, func() tea.Msg { return AdvanceInterviewMsg{ID: i.Interview.ID} }
				}
			}
		case key.Matches(msg, m.keys.Reject):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Interview.Status != constants.InterviewRejected {
					return m, func() tea.Msg { return RejectInterviewMsg{ID: i.Interview.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteInterviewMsg{ID: i.Interview.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No interviews tracked.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
