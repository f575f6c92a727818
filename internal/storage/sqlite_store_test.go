package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.WorkMinutes != constants.DefaultWorkMinutes {
		t.Errorf("WorkMinutes = %d, want %d", settings.WorkMinutes, constants.DefaultWorkMinutes)
	}
	if settings.BreakMinutes != constants.DefaultBreakMinutes {
		t.Errorf("BreakMinutes = %d, want %d", settings.BreakMinutes, constants.DefaultBreakMinutes)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled = false, want true by default")
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := models.Settings{
		WorkMinutes:    50,
		BreakMinutes:   10,
		SoundEnabled:   false,
		QuizServiceURL: "https://quiz.example.com",
		Timezone:       "Europe/Berlin",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestDailyLogCRUD(t *testing.T) {
	store := setupTestStore(t)

	log := models.DailyLog{
		ID:           "log-1",
		Date:         "2024-03-15",
		Tasks:        "implemented retries\nwrote docs",
		Notes:        "flaky network all morning",
		TimeSpentMin: 90,
		Tags:         []string{"infra", "docs"},
		CreatedAt:    time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
	}
	if err := store.AddDailyLog(log); err != nil {
		t.Fatalf("AddDailyLog() error = %v", err)
	}

	got, err := store.GetDailyLog("log-1")
	if err != nil {
		t.Fatalf("GetDailyLog() error = %v", err)
	}
	if got.Tasks != log.Tasks || got.TimeSpentMin != 90 {
		t.Errorf("GetDailyLog() = %+v, want %+v", got, log)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "infra" {
		t.Errorf("Tags = %v, want %v", got.Tags, log.Tags)
	}
	if !got.CreatedAt.Equal(log.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, log.CreatedAt)
	}

	got.Notes = "resolved by afternoon"
	if err := store.UpdateDailyLog(got); err != nil {
		t.Fatalf("UpdateDailyLog() error = %v", err)
	}
	updated, err := store.GetDailyLog("log-1")
	if err != nil {
		t.Fatalf("GetDailyLog() after update error = %v", err)
	}
	if updated.Notes != "resolved by afternoon" {
		t.Errorf("Notes = %q after update", updated.Notes)
	}

	byDate, err := store.GetDailyLogsForDate("2024-03-15")
	if err != nil {
		t.Fatalf("GetDailyLogsForDate() error = %v", err)
	}
	if len(byDate) != 1 {
		t.Errorf("GetDailyLogsForDate() returned %d logs, want 1", len(byDate))
	}

	if err := store.DeleteDailyLog("log-1"); err != nil {
		t.Fatalf("DeleteDailyLog() error = %v", err)
	}
	if _, err := store.GetDailyLog("log-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDailyLog() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDailyLogNotFound(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetDailyLog("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDailyLog(missing) error = %v, want ErrNotFound", err)
	}
	if err := store.UpdateDailyLog(models.DailyLog{ID: "missing", CreatedAt: time.Now()}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateDailyLog(missing) error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteDailyLog("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteDailyLog(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTopicCRUD(t *testing.T) {
	store := setupTestStore(t)

	topic := models.LearningTopic{
		ID:        "topic-1",
		Title:     "Go generics",
		Status:    constants.TopicPending,
		Tags:      []string{"go"},
		Subtopics: []models.Subtopic{{ID: "sub-1", Title: "type parameters"}},
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := store.AddTopic(topic); err != nil {
		t.Fatalf("AddTopic() error = %v", err)
	}

	got, err := store.GetTopic("topic-1")
	if err != nil {
		t.Fatalf("GetTopic() error = %v", err)
	}
	if got.Title != "Go generics" || got.Status != constants.TopicPending {
		t.Errorf("GetTopic() = %+v", got)
	}
	if got.CompletedAt != "" {
		t.Errorf("CompletedAt = %q, want empty for pending topic", got.CompletedAt)
	}
	if len(got.Subtopics) != 1 || got.Subtopics[0].Title != "type parameters" {
		t.Errorf("Subtopics = %+v", got.Subtopics)
	}

	// Completion writes the revision bookkeeping fields
	got.Status = constants.TopicCompleted
	got.CompletedAt = "2024-03-10"
	got.RevisionDays = constants.DefaultRevisionDays
	got.RevisedOn = []string{"2024-03-11"}
	if err := store.UpdateTopic(got); err != nil {
		t.Fatalf("UpdateTopic() error = %v", err)
	}

	completed, err := store.GetTopic("topic-1")
	if err != nil {
		t.Fatalf("GetTopic() after completion error = %v", err)
	}
	if completed.CompletedAt != "2024-03-10" {
		t.Errorf("CompletedAt = %q, want 2024-03-10", completed.CompletedAt)
	}
	if len(completed.RevisionDays) != 3 || completed.RevisionDays[0] != 1 {
		t.Errorf("RevisionDays = %v, want [1 3 7]", completed.RevisionDays)
	}
	if len(completed.RevisedOn) != 1 || completed.RevisedOn[0] != "2024-03-11" {
		t.Errorf("RevisedOn = %v", completed.RevisedOn)
	}

	if err := store.DeleteTopic("topic-1"); err != nil {
		t.Fatalf("DeleteTopic() error = %v", err)
	}
	if _, err := store.GetTopic("topic-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTopic() after delete error = %v, want ErrNotFound", err)
	}
}

func TestInterviewCRUD(t *testing.T) {
	store := setupTestStore(t)

	iv := models.Interview{
		ID:          "iv-1",
		Company:     "Acme",
		Role:        "Backend Engineer",
		Status:      constants.InterviewApplied,
		AppliedDate: "2024-03-01",
		LastUpdated: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.AddInterview(iv); err != nil {
		t.Fatalf("AddInterview() error = %v", err)
	}

	iv.Status = constants.InterviewTechnical
	iv.Timeline = append(iv.Timeline, models.InterviewEvent{
		ID: "ev-1", Date: "2024-03-08", Type: "technical", Notes: "systems round",
	})
	iv.LastUpdated = time.Date(2024, 3, 8, 15, 0, 0, 0, time.UTC)
	if err := store.UpdateInterview(iv); err != nil {
		t.Fatalf("UpdateInterview() error = %v", err)
	}

	got, err := store.GetInterview("iv-1")
	if err != nil {
		t.Fatalf("GetInterview() error = %v", err)
	}
	if got.Status != constants.InterviewTechnical {
		t.Errorf("Status = %q, want technical", got.Status)
	}
	if len(got.Timeline) != 1 || got.Timeline[0].Type != "technical" {
		t.Errorf("Timeline = %+v", got.Timeline)
	}
}

func TestGoalCRUD(t *testing.T) {
	store := setupTestStore(t)

	g := models.Goal{
		ID:           "goal-1",
		Title:        "Complete 3 topics",
		Type:         constants.GoalWeekly,
		TargetCount:  3,
		LinkedTopics: []string{"topic-1", "topic-2"},
		StartDate:    "2024-03-11",
		EndDate:      "2024-03-17",
	}
	if err := store.AddGoal(g); err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}

	g.CurrentCount = 3
	g.Completed = true
	if err := store.UpdateGoal(g); err != nil {
		t.Fatalf("UpdateGoal() error = %v", err)
	}

	got, err := store.GetGoal("goal-1")
	if err != nil {
		t.Fatalf("GetGoal() error = %v", err)
	}
	if !got.Completed || got.CurrentCount != 3 {
		t.Errorf("GetGoal() = %+v, want completed with count 3", got)
	}
	if len(got.LinkedTopics) != 2 {
		t.Errorf("LinkedTopics = %v", got.LinkedTopics)
	}
}

func TestAddSessionAssignsID(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.AddSession(models.PomodoroSession{
		DurationMin: 25,
		Type:        constants.SessionWork,
		Name:        "Go generics",
		LinkedID:    "topic-1",
	})
	if err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}
	if created.ID == "" {
		t.Error("AddSession() should assign an id")
	}
	if created.CompletedAt.IsZero() {
		t.Error("AddSession() should stamp CompletedAt")
	}

	all, err := store.GetAllSessions()
	if err != nil {
		t.Fatalf("GetAllSessions() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("GetAllSessions() returned %d sessions, want 1", len(all))
	}
	if all[0].ID != created.ID || all[0].LinkedID != "topic-1" {
		t.Errorf("stored session = %+v", all[0])
	}
}

func TestSessionsSinceAndDelete(t *testing.T) {
	store := setupTestStore(t)

	old := models.PomodoroSession{
		ID: "old", DurationMin: 25, Type: constants.SessionWork,
		CompletedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	recent := models.PomodoroSession{
		ID: "recent", DurationMin: 25, Type: constants.SessionWork,
		CompletedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	for _, sess := range []models.PomodoroSession{old, recent} {
		if _, err := store.AddSession(sess); err != nil {
			t.Fatalf("AddSession() error = %v", err)
		}
	}

	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	since, err := store.GetSessionsSince(cutoff)
	if err != nil {
		t.Fatalf("GetSessionsSince() error = %v", err)
	}
	if len(since) != 1 || since[0].ID != "recent" {
		t.Errorf("GetSessionsSince() = %+v, want only the recent session", since)
	}

	if err := store.DeleteSession("old"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if err := store.DeleteSession("old"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSession() twice error = %v, want ErrNotFound", err)
	}
}

func TestStreakDataRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// Fresh database yields zeroed state, not an error
	fresh, err := store.GetStreakData()
	if err != nil {
		t.Fatalf("GetStreakData() on fresh db error = %v", err)
	}
	if fresh.CurrentStreak != 0 || fresh.DailyActivity == nil {
		t.Errorf("fresh streak data = %+v", fresh)
	}

	want := models.StreakData{
		CurrentStreak:     4,
		LongestStreak:     9,
		LastCompletedDate: "2024-03-15",
		DailyActivity:     map[string]int{"2024-03-14": 2, "2024-03-15": 5},
	}
	if err := store.SaveStreakData(want); err != nil {
		t.Fatalf("SaveStreakData() error = %v", err)
	}

	got, err := store.GetStreakData()
	if err != nil {
		t.Fatalf("GetStreakData() error = %v", err)
	}
	if got.CurrentStreak != 4 || got.LongestStreak != 9 || got.LastCompletedDate != "2024-03-15" {
		t.Errorf("GetStreakData() = %+v, want %+v", got, want)
	}
	if got.DailyActivity["2024-03-15"] != 5 {
		t.Errorf("DailyActivity = %v", got.DailyActivity)
	}

	// Saving again overwrites the single row
	want.CurrentStreak = 5
	want.DailyActivity["2024-03-16"] = 1
	if err := store.SaveStreakData(want); err != nil {
		t.Fatalf("SaveStreakData() second save error = %v", err)
	}
	got, err = store.GetStreakData()
	if err != nil {
		t.Fatalf("GetStreakData() error = %v", err)
	}
	if got.CurrentStreak != 5 || len(got.DailyActivity) != 3 {
		t.Errorf("GetStreakData() after overwrite = %+v", got)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() should fail when the database file does not exist")
	}
}

func TestLoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	first.Close()

	second := NewSQLiteStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer second.Close()

	if _, err := second.GetSettings(); err != nil {
		t.Errorf("GetSettings() after Load error = %v", err)
	}
}
