package loglist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"devtrack/internal/models"
)

type AddLogMsg struct{}

type DeleteLogMsg struct {
	ID string
}

// LinkLogMsg asks the timer to attach to this log entry.
type LinkLogMsg struct {
	ID string
}

type Item struct {
	Log models.DailyLog
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s  %s", i.Log.Date, i.Log.FirstTask())
	return title
}

func (i Item) Description() string {
	parts := []string{formatMinutes(i.Log.TimeSpentMin)}
	if len(i.Log.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(i.Log.Tags, " #"))
	}
	if i.Log.Notes != "" {
		parts = append(parts, i.Log.Notes)
	}
	return strings.Join(parts, "  ")
}

func (i Item) FilterValue() string { return i.Log.Tasks }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Link   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add log"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Link: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "link timer"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(logs []models.DailyLog, width, height int) Model {
	l := list.New(toItems(logs), list.NewDefaultDelegate(), width, height)
	l.Title = "Logs"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Link}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Link}
	}

	return Model{list: l, keys: keys}
}

func toItems(logs []models.DailyLog) []list.Item {
	items := make([]list.Item, len(logs))
	for i, l := range logs {
		items[i] = Item{Log: l}
	}
	return items
}

func (m *Model) SetLogs(logs []models.DailyLog) {
	m.list.SetItems(toItems(logs))
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
			return m, func() tea.Msg { return AddLogMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteLogMsg{ID: i.Log.ID} }
			}
		case key.Matches(msg, m.keys.Link):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return LinkLogMsg{ID: i.Log.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No logs yet.\n  Press 'a' to record what you worked on."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func formatMinutes(min int) string {
	if min >= 60 {
		return fmt.Sprintf("%dh %02dm", min/60, min%60)
	}
	return fmt.Sprintf("%dm", min)
}
