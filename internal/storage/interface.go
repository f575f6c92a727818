package storage

import (
	"errors"

	"devtrack/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Migrations
	RunMigrations(logFn func(string)) (int, error)
	SchemaStatus() (current, latest int, err error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Daily logs
	AddDailyLog(models.DailyLog) error
	GetDailyLog(id string) (models.DailyLog, error)
	GetDailyLogsForDate(date string) ([]models.DailyLog, error)
	GetAllDailyLogs() ([]models.DailyLog, error)
	UpdateDailyLog(models.DailyLog) error
	DeleteDailyLog(id string) error

	// Learning topics
	AddTopic(models.LearningTopic) error
	GetTopic(id string) (models.LearningTopic, error)
	GetAllTopics() ([]models.LearningTopic, error)
	UpdateTopic(models.LearningTopic) error
	DeleteTopic(id string) error

	// Interviews
	AddInterview(models.Interview) error
	GetInterview(id string) (models.Interview, error)
	GetAllInterviews() ([]models.Interview, error)
	UpdateInterview(models.Interview) error
	DeleteInterview(id string) error

	// Goals
	AddGoal(models.Goal) error
	GetGoal(id string) (models.Goal, error)
	GetAllGoals() ([]models.Goal, error)
	UpdateGoal(models.Goal) error
	DeleteGoal(id string) error

	// Pomodoro sessions
	AddSession(models.PomodoroSession) (models.PomodoroSession, error)
	GetAllSessions() ([]models.PomodoroSession, error)
	GetSessionsSince(cutoff string) ([]models.PomodoroSession, error)
	DeleteSession(id string) error

	// Streak
	GetStreakData() (models.StreakData, error)
	SaveStreakData(models.StreakData) error

	// Utils
	GetConfigPath() string
}
