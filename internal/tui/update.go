package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/models"
	"devtrack/internal/notifier"
	"devtrack/internal/streak"
	"devtrack/internal/timer"
	"devtrack/internal/tui/components/goalboard"
	"devtrack/internal/tui/components/interviews"
	"devtrack/internal/tui/components/learning"
	"devtrack/internal/tui/components/loglist"
	"devtrack/internal/utils"
)

// timerTickMsg carries the engine generation it was scheduled under. A
// stale generation means the chain was cancelled; the engine drops it.
type timerTickMsg struct {
	gen uint64
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.engine.Generation()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func bellCmd() tea.Cmd {
	return func() tea.Msg {
		fmt.Print("\a")
		return nil
	}
}

func notifyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		// Best effort: no tray app running is the normal case
		_ = notifier.New().Notify(text)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetViewport(msg.Width, msg.Height)

		contentW := msg.Width - 4
		contentH := msg.Height - 6
		m.dashboardModel.SetSize(contentW, contentH)
		m.logList.SetSize(contentW, contentH)
		m.learningModel.SetSize(contentW, contentH)
		m.interviewsList.SetSize(contentW, contentH)
		m.goalsModel.SetSize(contentW, contentH)
		m.pomodoroModel.SetSize(contentW, contentH)
		return m, nil

	case timerTickMsg:
		done, completed := m.engine.Tick(msg.gen)
		if completed {
			cmds = append(cmds, m.handleCompletion(done)...)
			m.refreshTimerView()
			return m, tea.Batch(cmds...)
		}
		m.refreshTimerView()
		if m.engine.Running() && msg.gen == m.engine.Generation() {
			cmds = append(cmds, m.tickCmd())
		}
		return m, tea.Batch(cmds...)
	}

	// Sub-states capture all input until they resolve
	switch m.state {
	case constants.StateAddLog, constants.StateAddTopic, constants.StateAddInterview,
		constants.StateAddGoal, constants.StateEditDurations, constants.StateLinkPicker:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateMoveTimer:
		return m.updateMoveTimer(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		m.completionNote = ""
		m.formError = ""

		if handled, model, cmd := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case loglist.AddLogMsg:
		return m.openLogForm(), nil
	case loglist.DeleteLogMsg:
		return m.confirmDelete("log", msg.ID, m.logLabel(msg.ID)), nil
	case loglist.LinkLogMsg:
		m.engine.SetLink(timer.TaskLink(msg.ID))
		m.refreshTimerView()
		m.completionNote = "Timer linked to log entry"
		return m, nil

	case learning.AddTopicMsg:
		return m.openTopicForm(), nil
	case learning.StartTopicMsg:
		m.startTopic(msg.ID)
		return m, nil
	case learning.CompleteTopicMsg:
		m.completeTopic(msg.ID)
		return m, nil
	case learning.ReviseTopicMsg:
		m.reviseTopic(msg.ID)
		return m, nil
	case learning.UndoTopicMsg:
		m.undoTopic(msg.ID)
		return m, nil
	case learning.DeleteTopicMsg:
		return m.confirmDelete("topic", msg.ID, m.topicLabel(msg.ID)), nil
	case learning.LinkTopicMsg:
		m.engine.SetLink(timer.TopicLink(msg.ID))
		m.refreshTimerView()
		m.completionNote = "Timer linked to topic"
		return m, nil

	case interviews.AddInterviewMsg:
		return m.openInterviewForm(), nil
	case interviews.AdvanceInterviewMsg:
		m.advanceInterview(msg.ID, "")
		return m, nil
	case interviews.RejectInterviewMsg:
		m.advanceInterview(msg.ID, constants.InterviewRejected)
		return m, nil
	case interviews.DeleteInterviewMsg:
		return m.confirmDelete("interview", msg.ID, m.interviewLabel(msg.ID)), nil

	case goalboard.AddGoalMsg:
		return m.openGoalForm(), nil
	case goalboard.ProgressGoalMsg:
		m.progressGoal(msg.ID)
		return m, nil
	case goalboard.DeleteGoalMsg:
		return m.confirmDelete("goal", msg.ID, m.goalLabel(msg.ID)), nil
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDashboard:
		m.dashboardModel, cmd = m.dashboardModel.Update(msg)
	case constants.StateLogs:
		m.logList, cmd = m.logList.Update(msg)
	case constants.StateLearning:
		m.learningModel, cmd = m.learningModel.Update(msg)
	case constants.StateInterviews:
		m.interviewsList, cmd = m.interviewsList.Update(msg)
	case constants.StateGoals:
		m.goalsModel, cmd = m.goalsModel.Update(msg)
	case constants.StatePomodoro:
		m.pomodoroModel, cmd = m.pomodoroModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// activeListFiltering reports whether the current tab's list is capturing
// input for its filter; global shortcuts must not steal those keys.
func (m Model) activeListFiltering() bool {
	switch m.state {
	case constants.StateLogs:
		return m.logList.Filtering()
	case constants.StateLearning:
		return m.learningModel.Filtering()
	case constants.StateInterviews:
		return m.interviewsList.Filtering()
	case constants.StateGoals:
		return m.goalsModel.Filtering()
	}
	return false
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return true, m, tea.Quit
	}
	if m.activeListFiltering() {
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return true, m, tea.Quit

	case "tab":
		m.state = constants.SessionState((int(m.state) + 1) % constants.TabCount)
		return true, m, nil
	case "shift+tab":
		m.state = constants.SessionState((int(m.state) + constants.TabCount - 1) % constants.TabCount)
		return true, m, nil

	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil

	case " ":
		m.engine.Toggle()
		m.refreshTimerView()
		if m.engine.Running() {
			return true, m, m.tickCmd()
		}
		return true, m, nil

	case "R":
		m.engine.Reset()
		m.refreshTimerView()
		return true, m, nil

	case "f":
		m.engine.SetFloating(!m.engine.Floating())
		m.refreshTimerView()
		return true, m, nil

	case "m":
		if m.engine.Floating() && m.state != constants.StatePomodoro {
			m.previousState = m.state
			m.state = constants.StateMoveTimer
			return true, m, nil
		}

	case "l":
		if m.state == constants.StatePomodoro {
			return true, m.openLinkPicker(), nil
		}

	case "e":
		if m.state == constants.StatePomodoro {
			return true, m.openDurationsForm(), nil
		}
	}
	return false, m, nil
}

func (m Model) updateMoveTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.engine.MoveFloating(0, -1)
		case "down", "j":
			m.engine.MoveFloating(0, 1)
		case "left", "h":
			m.engine.MoveFloating(-2, 0)
		case "right", "l":
			m.engine.MoveFloating(2, 0)
		case "m", "esc", "enter":
			m.state = m.previousState
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			m.performDelete()
			m.state = m.previousState
		case "n", "esc":
			m.state = m.previousState
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) confirmDelete(kind, id, label string) Model {
	m.toDelete = pendingDelete{kind: kind, id: id, label: label}
	m.previousState = m.state
	m.state = constants.StateConfirmDelete
	return m
}

func (m *Model) performDelete() {
	var err error
	switch m.toDelete.kind {
	case "log":
		err = m.store.DeleteDailyLog(m.toDelete.id)
		m.refreshLogs()
	case "topic":
		err = m.store.DeleteTopic(m.toDelete.id)
		if link := m.engine.Link(); link.Kind == timer.LinkTopic && link.ID == m.toDelete.id {
			m.engine.ClearLink()
		}
		m.refreshTopics()
		m.refreshDashboard()
	case "interview":
		err = m.store.DeleteInterview(m.toDelete.id)
		m.refreshInterviews()
	case "goal":
		err = m.store.DeleteGoal(m.toDelete.id)
		m.refreshGoals()
	}
	if err != nil {
		m.formError = fmt.Sprintf("delete failed: %v", err)
	}
	m.refreshTimerView()
}

// handleCompletion records the finished phase as a session, advances the
// streak for work phases, and fans out sound and notification.
func (m *Model) handleCompletion(done timer.Completion) []tea.Cmd {
	name := m.completionName(done.Link)
	session := models.PomodoroSession{
		LinkedID:    done.Link.ID,
		Name:        name,
		DurationMin: done.DurationMin,
		Type:        done.Phase.SessionType(),
	}
	if _, err := m.store.AddSession(session); err != nil {
		m.formError = fmt.Sprintf("failed to record session: %v", err)
	}

	var text string
	if done.Phase == timer.PhaseWork {
		m.recordStreakActivity()
		text = "Work phase complete. Time for a break."
	} else {
		text = "Break over. Ready for the next work phase."
	}
	m.completionNote = text
	m.refreshDashboard()

	cmds := []tea.Cmd{notifyCmd(text)}
	if settings, err := m.store.GetSettings(); err != nil || settings.SoundEnabled {
		cmds = append(cmds, bellCmd())
	}
	return cmds
}

func (m *Model) completionName(link timer.Link) string {
	var name string
	switch link.Kind {
	case timer.LinkTopic:
		if topic, err := m.store.GetTopic(link.ID); err == nil {
			name = topic.Title
		}
	case timer.LinkTask:
		if log, err := m.store.GetDailyLog(link.ID); err == nil {
			name = log.FirstTask()
		}
	}
	return cli.Truncate(name, constants.SessionNameMaxLen)
}

func (m *Model) recordStreakActivity() {
	today := m.today()
	data, err := m.store.GetStreakData()
	if err != nil {
		return
	}
	if err := m.store.SaveStreakData(streak.Advance(data, today)); err != nil {
		m.formError = fmt.Sprintf("failed to save streak: %v", err)
	}
}

func (m *Model) startTopic(id string) {
	topic, err := m.store.GetTopic(id)
	if err != nil {
		return
	}
	topic.Status = constants.TopicInProgress
	if err := m.store.UpdateTopic(topic); err == nil {
		m.refreshTopics()
	}
}

func (m *Model) completeTopic(id string) {
	topic, err := m.store.GetTopic(id)
	if err != nil {
		return
	}
	topic.Status = constants.TopicCompleted
	topic.CompletedAt = m.today()
	topic.RevisionDays = append([]int(nil), constants.DefaultRevisionDays...)
	topic.RevisedOn = nil
	if err := m.store.UpdateTopic(topic); err != nil {
		m.formError = fmt.Sprintf("failed to update topic: %v", err)
		return
	}
	m.recordStreakActivity()
	m.refreshTopics()
	m.refreshDashboard()
	m.completionNote = fmt.Sprintf("Completed %q. Revisions on day 1, 3, and 7.", topic.Title)
}

func (m *Model) reviseTopic(id string) {
	topic, err := m.store.GetTopic(id)
	if err != nil {
		return
	}
	today := m.today()
	day, due := streak.RevisionDue(topic, today)
	if !due {
		return
	}
	if err := streak.AcknowledgeRevision(&topic, day); err != nil {
		m.formError = err.Error()
		return
	}
	if err := m.store.UpdateTopic(topic); err != nil {
		m.formError = fmt.Sprintf("failed to update topic: %v", err)
		return
	}
	m.recordStreakActivity()
	m.refreshTopics()
	m.refreshDashboard()
	m.completionNote = fmt.Sprintf("Day %d revision of %q done.", day, topic.Title)
}

func (m *Model) undoTopic(id string) {
	topic, err := m.store.GetTopic(id)
	if err != nil {
		return
	}
	if topic.Status != constants.TopicCompleted || topic.CompletedAt != m.today() {
		m.formError = "completion can only be undone on the day it was recorded"
		return
	}
	topic.Status = constants.TopicInProgress
	topic.CompletedAt = ""
	topic.RevisionDays = nil
	topic.RevisedOn = nil
	if err := m.store.UpdateTopic(topic); err != nil {
		m.formError = fmt.Sprintf("failed to update topic: %v", err)
		return
	}
	m.refreshTopics()
	m.refreshDashboard()
}

func (m *Model) advanceInterview(id string, to constants.InterviewStatus) {
	iv, err := m.store.GetInterview(id)
	if err != nil {
		return
	}
	if to == "" {
		to = interviews.NextStage(iv.Status)
	}
	if to == iv.Status {
		return
	}
	iv.Status = to
	iv.LastUpdated = time.Now()
	iv.Timeline = append(iv.Timeline, models.InterviewEvent{
		ID:   uuid.NewString(),
		Date: m.today(),
		Type: string(to),
	})
	if err := m.store.UpdateInterview(iv); err != nil {
		m.formError = fmt.Sprintf("failed to update interview: %v", err)
		return
	}
	m.refreshInterviews()
}

func (m *Model) progressGoal(id string) {
	goal, err := m.store.GetGoal(id)
	if err != nil || goal.Completed {
		return
	}
	goal.CurrentCount++
	if goal.CurrentCount >= goal.TargetCount {
		goal.CurrentCount = goal.TargetCount
		goal.Completed = true
	}
	if err := m.store.UpdateGoal(goal); err != nil {
		m.formError = fmt.Sprintf("failed to update goal: %v", err)
		return
	}
	if goal.Completed {
		m.recordStreakActivity()
		m.completionNote = fmt.Sprintf("🎉 Goal completed: %s", goal.Title)
		m.refreshDashboard()
	}
	m.refreshGoals()
}

func (m *Model) logLabel(id string) string {
	if log, err := m.store.GetDailyLog(id); err == nil {
		return cli.Truncate(log.FirstTask(), 40)
	}
	return id
}

func (m *Model) topicLabel(id string) string {
	if topic, err := m.store.GetTopic(id); err == nil {
		return cli.Truncate(topic.Title, 40)
	}
	return id
}

func (m *Model) interviewLabel(id string) string {
	if iv, err := m.store.GetInterview(id); err == nil {
		return cli.Truncate(iv.Company+" — "+iv.Role, 40)
	}
	return id
}

func (m *Model) goalLabel(id string) string {
	if goal, err := m.store.GetGoal(id); err == nil {
		return cli.Truncate(goal.Title, 40)
	}
	return id
}

// --- forms ---

func (m Model) openLogForm() Model {
	m.logForm = &LogFormModel{Time: "25"}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("What did you work on?").Value(&m.logForm.Tasks),
		huh.NewInput().Title("Minutes spent").Value(&m.logForm.Time),
		huh.NewInput().Title("Tags (comma separated)").Value(&m.logForm.Tags),
		huh.NewText().Title("Notes").Value(&m.logForm.Notes),
	))
	m.previousState = m.state
	m.state = constants.StateAddLog
	return m
}

func (m Model) openTopicForm() Model {
	m.topicForm = &TopicFormModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Topic title").Value(&m.topicForm.Title),
		huh.NewInput().Title("Description").Value(&m.topicForm.Description),
		huh.NewInput().Title("Tags (comma separated)").Value(&m.topicForm.Tags),
		huh.NewInput().Title("Subtopics (comma separated)").Value(&m.topicForm.Subtopics),
	))
	m.previousState = m.state
	m.state = constants.StateAddTopic
	return m
}

func (m Model) openInterviewForm() Model {
	m.interviewForm = &InterviewFormModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Company").Value(&m.interviewForm.Company),
		huh.NewInput().Title("Role").Value(&m.interviewForm.Role),
		huh.NewText().Title("Notes").Value(&m.interviewForm.Notes),
	))
	m.previousState = m.state
	m.state = constants.StateAddInterview
	return m
}

func (m Model) openGoalForm() Model {
	m.goalForm = &GoalFormModel{Type: constants.GoalWeekly, Target: "1"}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Goal title").Value(&m.goalForm.Title),
		huh.NewSelect[constants.GoalType]().
			Title("Cadence").
			Options(
				huh.NewOption("weekly", constants.GoalWeekly),
				huh.NewOption("monthly", constants.GoalMonthly),
			).
			Value(&m.goalForm.Type),
		huh.NewInput().Title("Target count").Value(&m.goalForm.Target),
	))
	m.previousState = m.state
	m.state = constants.StateAddGoal
	return m
}

func (m Model) openDurationsForm() Model {
	m.durationsForm = &DurationsFormModel{
		Work:  strconv.Itoa(m.engine.WorkMinutes()),
		Break: strconv.Itoa(m.engine.BreakMinutes()),
	}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Work minutes").Value(&m.durationsForm.Work),
		huh.NewInput().Title("Break minutes").Value(&m.durationsForm.Break),
	))
	m.previousState = m.state
	m.state = constants.StateEditDurations
	return m
}

func (m Model) openLinkPicker() Model {
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	if topics, err := m.store.GetAllTopics(); err == nil {
		for _, t := range topics {
			if t.Active() {
				options = append(options, huh.NewOption("topic: "+t.Title, "topic:"+t.ID))
			}
		}
	}
	if logs, err := m.store.GetDailyLogsForDate(m.today()); err == nil {
		for _, l := range logs {
			options = append(options, huh.NewOption("log: "+l.FirstTask(), "log:"+l.ID))
		}
	}

	m.linkSelection = ""
	if link := m.engine.Link(); link.Kind == timer.LinkTopic {
		m.linkSelection = "topic:" + link.ID
	} else if link.Kind == timer.LinkTask {
		m.linkSelection = "log:" + link.ID
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Link timer to").
			Options(options...).
			Value(&m.linkSelection),
	))
	m.previousState = m.state
	m.state = constants.StateLinkPicker
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case constants.StateAddLog:
			m.applyLogForm()
		case constants.StateAddTopic:
			m.applyTopicForm()
		case constants.StateAddInterview:
			m.applyInterviewForm()
		case constants.StateAddGoal:
			m.applyGoalForm()
		case constants.StateEditDurations:
			m.applyDurationsForm()
		case constants.StateLinkPicker:
			m.applyLinkSelection()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) applyLogForm() {
	tasks := strings.TrimSpace(m.logForm.Tasks)
	if tasks == "" {
		m.formError = "log entry needs a task description"
		return
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(m.logForm.Time))
	if err != nil || minutes < 0 {
		m.formError = "minutes must be a non-negative number"
		return
	}

	log := models.DailyLog{
		ID:           uuid.NewString(),
		Date:         m.today(),
		Tasks:        tasks,
		Notes:        strings.TrimSpace(m.logForm.Notes),
		TimeSpentMin: minutes,
		Tags:         cli.ParseTags(m.logForm.Tags),
		CreatedAt:    time.Now(),
	}
	if err := m.store.AddDailyLog(log); err != nil {
		m.formError = fmt.Sprintf("failed to add log: %v", err)
		return
	}
	m.recordStreakActivity()
	m.refreshLogs()
	m.refreshDashboard()
}

func (m *Model) applyTopicForm() {
	title := strings.TrimSpace(m.topicForm.Title)
	if title == "" {
		m.formError = "topic needs a title"
		return
	}

	var subtopics []models.Subtopic
	for _, s := range cli.ParseTags(m.topicForm.Subtopics) {
		subtopics = append(subtopics, models.Subtopic{ID: uuid.NewString(), Title: s})
	}

	topic := models.LearningTopic{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(m.topicForm.Description),
		Status:      constants.TopicPending,
		Tags:        cli.ParseTags(m.topicForm.Tags),
		Subtopics:   subtopics,
		CreatedAt:   time.Now(),
	}
	if err := m.store.AddTopic(topic); err != nil {
		m.formError = fmt.Sprintf("failed to add topic: %v", err)
		return
	}
	m.refreshTopics()
}

func (m *Model) applyInterviewForm() {
	company := strings.TrimSpace(m.interviewForm.Company)
	role := strings.TrimSpace(m.interviewForm.Role)
	if company == "" || role == "" {
		m.formError = "interview needs a company and role"
		return
	}

	today := m.today()
	iv := models.Interview{
		ID:          uuid.NewString(),
		Company:     company,
		Role:        role,
		Status:      constants.InterviewApplied,
		Notes:       strings.TrimSpace(m.interviewForm.Notes),
		AppliedDate: today,
		LastUpdated: time.Now(),
		Timeline: []models.InterviewEvent{{
			ID:   uuid.NewString(),
			Date: today,
			Type: string(constants.InterviewApplied),
		}},
	}
	if err := m.store.AddInterview(iv); err != nil {
		m.formError = fmt.Sprintf("failed to add interview: %v", err)
		return
	}
	m.refreshInterviews()
}

func (m *Model) applyGoalForm() {
	title := strings.TrimSpace(m.goalForm.Title)
	if title == "" {
		m.formError = "goal needs a title"
		return
	}
	target, err := strconv.Atoi(strings.TrimSpace(m.goalForm.Target))
	if err != nil || target < 1 {
		m.formError = "target must be a positive number"
		return
	}

	today := m.today()
	span := 7
	if m.goalForm.Type == constants.GoalMonthly {
		span = 30
	}
	end, err := utils.AddDays(today, span-1)
	if err != nil {
		end = today
	}

	goal := models.Goal{
		ID:          uuid.NewString(),
		Title:       title,
		Type:        m.goalForm.Type,
		TargetCount: target,
		StartDate:   today,
		EndDate:     end,
	}
	if err := m.store.AddGoal(goal); err != nil {
		m.formError = fmt.Sprintf("failed to add goal: %v", err)
		return
	}
	m.refreshGoals()
}

func (m *Model) applyDurationsForm() {
	work, err := strconv.Atoi(strings.TrimSpace(m.durationsForm.Work))
	if err != nil {
		m.formError = "work minutes must be a number"
		return
	}
	brk, err := strconv.Atoi(strings.TrimSpace(m.durationsForm.Break))
	if err != nil {
		m.formError = "break minutes must be a number"
		return
	}

	m.engine.SetDurations(work, brk)
	m.refreshTimerView()

	// Persist the clamped values so the CLI and the next TUI session agree
	settings, err := m.store.GetSettings()
	if err != nil {
		return
	}
	settings.WorkMinutes = m.engine.WorkMinutes()
	settings.BreakMinutes = m.engine.BreakMinutes()
	if err := m.store.SaveSettings(settings); err != nil {
		m.formError = fmt.Sprintf("failed to save settings: %v", err)
	}
}

func (m *Model) applyLinkSelection() {
	switch {
	case m.linkSelection == "":
		m.engine.ClearLink()
	case strings.HasPrefix(m.linkSelection, "topic:"):
		m.engine.SetLink(timer.TopicLink(strings.TrimPrefix(m.linkSelection, "topic:")))
	case strings.HasPrefix(m.linkSelection, "log:"):
		m.engine.SetLink(timer.TaskLink(strings.TrimPrefix(m.linkSelection, "log:")))
	}
	m.refreshTimerView()
}
