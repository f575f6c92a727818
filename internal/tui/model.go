package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"devtrack/internal/cli/streaks"
	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/storage"
	"devtrack/internal/streak"
	"devtrack/internal/timer"
	"devtrack/internal/tui/components/dashboard"
	"devtrack/internal/tui/components/goalboard"
	"devtrack/internal/tui/components/interviews"
	"devtrack/internal/tui/components/learning"
	"devtrack/internal/tui/components/loglist"
	"devtrack/internal/tui/components/pomodoro"
	"devtrack/internal/utils"
)

const heatmapWeeks = 12

type LogFormModel struct {
	Tasks string
	Notes string
	Time  string
	Tags  string
}

type TopicFormModel struct {
	Title       string
	Description string
	Tags        string
	Subtopics   string
}

type InterviewFormModel struct {
	Company string
	Role    string
	Notes   string
}

type GoalFormModel struct {
	Title  string
	Type   constants.GoalType
	Target string
}

type DurationsFormModel struct {
	Work  string
	Break string
}

// pendingDelete identifies the record awaiting y/n confirmation.
type pendingDelete struct {
	kind  string // "log", "topic", "interview", "goal"
	id    string
	label string
}

type Model struct {
	store         storage.Provider
	engine        *timer.Engine
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	dashboardModel dashboard.Model
	logList        loglist.Model
	learningModel  learning.Model
	interviewsList interviews.Model
	goalsModel     goalboard.Model
	pomodoroModel  pomodoro.Model

	form           *huh.Form
	logForm        *LogFormModel
	topicForm      *TopicFormModel
	interviewForm  *InterviewFormModel
	goalForm       *GoalFormModel
	durationsForm  *DurationsFormModel
	linkSelection  string
	toDelete       pendingDelete
	formError      string
	completionNote string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	settings, settingsErr := store.GetSettings()

	engine := timer.New()
	if settingsErr == nil {
		engine.SetDurations(settings.WorkMinutes, settings.BreakMinutes)
	}

	today := todayOrFallback(store)

	logs, err := store.GetAllDailyLogs()
	if err != nil {
		logs = []models.DailyLog{}
	}
	topics, err := store.GetAllTopics()
	if err != nil {
		topics = []models.LearningTopic{}
	}
	interviewList, err := store.GetAllInterviews()
	if err != nil {
		interviewList = []models.Interview{}
	}
	goals, err := store.GetAllGoals()
	if err != nil {
		goals = []models.Goal{}
	}

	m := Model{
		store:          store,
		engine:         engine,
		state:          constants.StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		dashboardModel: dashboard.New(),
		logList:        loglist.New(logs, 0, 0),
		learningModel:  learning.New(topics, today, 0, 0),
		interviewsList: interviews.New(interviewList, 0, 0),
		goalsModel:     goalboard.New(goals, 0, 0),
		pomodoroModel:  pomodoro.New(),
	}
	m.refreshDashboard()
	m.refreshTimerView()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StatePomodoro:
		keys = append(keys, m.keys.Timer, m.keys.Float)
	case constants.StateMoveTimer:
		keys = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	timerKeys := []key.Binding{m.keys.Timer, m.keys.Reset, m.keys.Float, m.keys.Move}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	return [][]key.Binding{global, timerKeys, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// today resolves the current date in the configured timezone, falling back
// to the system clock when settings are unreadable.
func (m *Model) today() string {
	return todayOrFallback(m.store)
}

func todayOrFallback(store storage.Provider) string {
	if settings, err := store.GetSettings(); err == nil {
		if day, err := utils.GetTodayFromSettings(settings); err == nil {
			return day
		}
	}
	return time.Now().Format(constants.DateFormat)
}

func (m *Model) refreshLogs() {
	if logs, err := m.store.GetAllDailyLogs(); err == nil {
		m.logList.SetLogs(logs)
	}
}

func (m *Model) refreshTopics() {
	if topics, err := m.store.GetAllTopics(); err == nil {
		m.learningModel.SetTopics(topics, m.today())
	}
}

func (m *Model) refreshInterviews() {
	if list, err := m.store.GetAllInterviews(); err == nil {
		m.interviewsList.SetInterviews(list)
	}
}

func (m *Model) refreshGoals() {
	if goals, err := m.store.GetAllGoals(); err == nil {
		m.goalsModel.SetGoals(goals)
	}
}

func (m *Model) refreshDashboard() {
	today := m.today()

	data, err := m.store.GetStreakData()
	if err != nil {
		data = models.NewStreakData()
	}
	heatmap := streaks.Heatmap(data.DailyActivity, today, heatmapWeeks)

	var due []dashboard.DueRevision
	if topics, err := m.store.GetAllTopics(); err == nil {
		for _, t := range topics {
			if day, ok := streak.RevisionDue(t, today); ok {
				due = append(due, dashboard.DueRevision{Title: t.Title, Day: day})
			}
		}
	}

	m.dashboardModel.SetData(data, heatmap, due, m.focusMinutesToday(today), today)
}

// focusMinutesToday sums completed work sessions since local midnight.
func (m *Model) focusMinutesToday(today string) int {
	day, err := utils.ParseDay(today)
	if err != nil {
		return 0
	}
	loc := time.Local
	if settings, err := m.store.GetSettings(); err == nil {
		if l, err := utils.LoadLocation(settings.Timezone); err == nil {
			loc = l
		}
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	sessions, err := m.store.GetSessionsSince(midnight.Format(time.RFC3339))
	if err != nil {
		return 0
	}
	total := 0
	for _, s := range sessions {
		if s.Type == constants.SessionWork {
			total += s.DurationMin
		}
	}
	return total
}

func (m *Model) refreshTimerView() {
	m.pomodoroModel.SetSnapshot(pomodoro.Snapshot{
		Phase:     m.engine.Phase(),
		Remaining: m.engine.Remaining(),
		Progress:  m.engine.Progress(),
		Running:   m.engine.Running(),
		Floating:  m.engine.Floating(),
		LinkName:  m.linkName(),
	})
}

// linkName resolves the engine's current link to a display name.
func (m *Model) linkName() string {
	link := m.engine.Link()
	switch link.Kind {
	case timer.LinkTopic:
		if topic, err := m.store.GetTopic(link.ID); err == nil {
			return topic.Title
		}
	case timer.LinkTask:
		if log, err := m.store.GetDailyLog(link.ID); err == nil {
			return log.FirstTask()
		}
	}
	return ""
}
