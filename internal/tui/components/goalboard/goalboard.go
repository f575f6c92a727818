package goalboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"devtrack/internal/models"
)

type AddGoalMsg struct{}

// ProgressGoalMsg records one unit of progress toward the goal.
type ProgressGoalMsg struct {
	ID string
}

type DeleteGoalMsg struct {
	ID string
}

const progressBarWidth = 20

type Item struct {
	Goal models.Goal
}

func (i Item) Title() string {
	title := i.Goal.Title
	if i.Goal.Completed {
		title = "✓ " + title
	}
	return title
}

func (i Item) Description() string {
	filled := int(i.Goal.Progress() * progressBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return fmt.Sprintf("%s %d/%d  %s  %s → %s",
		bar, i.Goal.CurrentCount, i.Goal.TargetCount, i.Goal.Type, i.Goal.StartDate, i.Goal.EndDate)
}

func (i Item) FilterValue() string { return i.Goal.Title }

type KeyMap struct {
	Add      key.Binding
	Progress key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add goal"),
		),
		Progress: key.NewBinding(
			key.WithKeys("+", "p"),
			key.WithHelp("+", "progress"),
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

func New(goals []models.Goal, width, height int) Model {
	l := list.New(toItems(goals), list.NewDefaultDelegate(), width, height)
	l.Title = "Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Progress, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Progress, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(goals []models.Goal) []list.Item {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	return items
}

func (m *Model) SetGoals(goals []models.Goal) {
	m.list.SetItems(toItems(goals))
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
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Progress):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.Goal.Completed {
					return m, func() tea.Msg { return ProgressGoalMsg{ID: i.Goal.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteGoalMsg{ID: i.Goal.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No goals yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
