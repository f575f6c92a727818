package learning

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/streak"
)

type AddTopicMsg struct{}

type StartTopicMsg struct {
	ID string
}

type CompleteTopicMsg struct {
	ID string
}

type ReviseTopicMsg struct {
	ID string
}

// UndoTopicMsg reverts a completion recorded earlier today.
type UndoTopicMsg struct {
	ID string
}

type DeleteTopicMsg struct {
	ID string
}

// LinkTopicMsg asks the timer to attach to this topic.
type LinkTopicMsg struct {
	ID string
}

type Item struct {
	Topic  models.LearningTopic
	DueDay int
	IsDue  bool
}

func (i Item) Title() string {
	var marker string
	switch i.Topic.Status {
	case constants.TopicCompleted:
		marker = "✓"
	case constants.TopicInProgress:
		marker = "▶"
	default:
		marker = "○"
	}
	title := fmt.Sprintf("%s %s", marker, i.Topic.Title)
	if i.IsDue {
		title += fmt.Sprintf("  ← day %d revision due", i.DueDay)
	}
	return title
}

func (i Item) Description() string {
	parts := []string{string(i.Topic.Status)}
	if total := len(i.Topic.Subtopics); total > 0 {
		done := 0
		for _, s := range i.Topic.Subtopics {
			if s.Completed {
				done++
			}
		}
		parts = append(parts, fmt.Sprintf("subtopics %d/%d", done, total))
	}
	if len(i.Topic.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(i.Topic.Tags, " #"))
	}
	return strings.Join(parts, "  ")
}

func (i Item) FilterValue() string { return i.Topic.Title }

type KeyMap struct {
	Add      key.Binding
	Start    key.Binding
	Complete key.Binding
	Revise   key.Binding
	Undo     key.Binding
	Delete   key.Binding
	Link     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add topic"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		Revise: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "revise"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo complete"),
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
	list  list.Model
	keys  KeyMap
	today string
}

func New(topics []models.LearningTopic, today string, width, height int) Model {
	l := list.New(toItems(topics, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Learning"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Start, keys.Complete, keys.Revise, keys.Undo, keys.Delete, keys.Link}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Start, keys.Complete, keys.Revise, keys.Undo, keys.Delete, keys.Link}
	}

	return Model{list: l, keys: keys, today: today}
}

func toItems(topics []models.LearningTopic, today string) []list.Item {
	items := make([]list.Item, len(topics))
	for i, t := range topics {
		day, due := streak.RevisionDue(t, today)
		items[i] = Item{Topic: t, DueDay: day, IsDue: due}
	}
	return items
}

func (m *Model) SetTopics(topics []models.LearningTopic, today string) {
	m.today = today
	m.list.SetItems(toItems(topics, today))
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
			return m, func() tea.Msg { return AddTopicMsg{} }
		case key.Matches(msg, m.keys.Start):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Topic.Status == constants.TopicPending {
					return m, func() tea.Msg { return StartTopicMsg{ID: i.Topic.ID} }
				}
			}
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Topic.Status != constants.TopicCompleted {
					return m, func() tea.Msg { return CompleteTopicMsg{ID: i.Topic.ID} }
				}
			}
		case key.Matches(msg, m.keys.Revise):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.IsDue {
					return m, func() tea.Msg { return ReviseTopicMsg{ID: i.Topic.ID} }
				}
			}
		case key.Matches(msg, m.keys.Undo):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Topic.Status == constants.TopicCompleted && i.Topic.CompletedAt == m.today {
					return m, func() tea.Msg { return UndoTopicMsg{ID: i.Topic.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteTopicMsg{ID: i.Topic.ID} }
			}
		case key.Matches(msg, m.keys.Link):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return LinkTopicMsg{ID: i.Topic.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No topics yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
