package constants

import "time"

// TopicStatus represents the lifecycle state of a learning topic
type TopicStatus string

// InterviewStatus represents the pipeline stage of an interview
type InterviewStatus string

// GoalType represents the cadence of a goal
type GoalType string

// SessionType represents the phase a pomodoro session was recorded for
type SessionType string

// Difficulty represents the difficulty band of a quiz question
type Difficulty string

// SessionState represents the current state of the TUI application
type SessionState int

// The first six states are the main tabs, in display order. Everything
// after StatePomodoro is a sub-state layered over one of the tabs.
const (
	StateDashboard SessionState = iota
	StateLogs
	StateLearning
	StateInterviews
	StateGoals
	StatePomodoro
	StateAddLog
	StateAddTopic
	StateAddInterview
	StateAddGoal
	StateEditDurations
	StateLinkPicker
	StateMoveTimer
	StateConfirmDelete
)

// TabCount is the number of main tabs cycled with tab/shift+tab.
const TabCount = int(StatePomodoro) + 1

const (
	AppName            = "devtrack"
	DefaultKeyringUser = "database-connection"
	QuizKeyringUser    = "quiz-api-key"
	DefaultConfigPath  = "~/.config/devtrack/devtrack.db"
	Version            = "v0.3.0"

	// Timer defaults (minutes)
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5

	// Settings defaults
	DefaultSoundEnabled = true
	DefaultTimezone     = "Local"

	// Bounds for user-supplied durations; out-of-range input is clamped,
	// never rejected
	MinPhaseMinutes = 1
	MaxPhaseMinutes = 180

	// Floating timer overlay footprint in terminal cells
	FloatingOverlayWidth  = 18
	FloatingOverlayHeight = 3

	// Session name length cap when derived from a linked topic or task
	SessionNameMaxLen = 50

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "devtrack-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "devtrack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "dev.devtrack.tray"

	// Topic statuses
	TopicPending    TopicStatus = "pending"
	TopicInProgress TopicStatus = "in-progress"
	TopicCompleted  TopicStatus = "completed"

	// Interview statuses
	InterviewApplied   InterviewStatus = "applied"
	InterviewHR        InterviewStatus = "hr"
	InterviewTechnical InterviewStatus = "technical"
	InterviewOffer     InterviewStatus = "offer"
	InterviewRejected  InterviewStatus = "rejected"

	// Goal types
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"

	// Session types
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"

	// Quiz difficulties
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultRevisionDays are the spaced-repetition offsets (in days after
// completion) seeded onto a topic when it is marked completed.
var DefaultRevisionDays = []int{1, 3, 7}
