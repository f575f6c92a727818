package cli

import (
	"fmt"
	"strings"

	"devtrack/internal/backup"
	"devtrack/internal/constants"
	"devtrack/internal/logger"
	"devtrack/internal/models"
	"devtrack/internal/storage"
	"devtrack/internal/streak"
	"devtrack/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.IsPostgresConnString(path) {
		// Server-side databases are backed up with pg_dump, not file copies
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns today's date string in the user's configured timezone.
func (c *Context) Today() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	return utils.GetTodayFromSettings(settings)
}

// RecordActivity counts one qualifying completion toward the streak and
// returns the updated state.
func (c *Context) RecordActivity() (models.StreakData, error) {
	today, err := c.Today()
	if err != nil {
		return models.StreakData{}, err
	}

	data, err := c.Store.GetStreakData()
	if err != nil {
		return models.StreakData{}, fmt.Errorf("failed to get streak data: %w", err)
	}

	updated := streak.Advance(data, today)
	if err := c.Store.SaveStreakData(updated); err != nil {
		return models.StreakData{}, fmt.Errorf("failed to save streak data: %w", err)
	}
	return updated, nil
}

// MatchID resolves a user-supplied id or unique id prefix against the known
// ids.
func MatchID(arg string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no record matches id %q", arg)
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// ParseTags splits a comma-separated tag list, dropping empties.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Truncate shortens a string for display, appending an ellipsis.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// FormatMinutes renders a minute count as "2h 05m" or "45m".
func FormatMinutes(min int) string {
	if min >= 60 {
		return fmt.Sprintf("%dh %02dm", min/60, min%60)
	}
	return fmt.Sprintf("%dm", min)
}

// FormatStreak renders the streak counters for command output.
func FormatStreak(data models.StreakData) string {
	return fmt.Sprintf("current streak: %d day(s), longest: %d day(s)", data.CurrentStreak, data.LongestStreak)
}

// ValidateTopicStatus checks a user-supplied topic status string.
func ValidateTopicStatus(s string) (constants.TopicStatus, error) {
	switch constants.TopicStatus(s) {
	case constants.TopicPending, constants.TopicInProgress, constants.TopicCompleted:
		return constants.TopicStatus(s), nil
	}
	return "", fmt.Errorf("invalid status %q (expected pending|in-progress|completed)", s)
}

// ValidateInterviewStatus checks a user-supplied interview status string.
func ValidateInterviewStatus(s string) (constants.InterviewStatus, error) {
	switch constants.InterviewStatus(s) {
	case constants.InterviewApplied, constants.InterviewHR, constants.InterviewTechnical,
		constants.InterviewOffer, constants.InterviewRejected:
		return constants.InterviewStatus(s), nil
	}
	return "", fmt.Errorf("invalid status %q (expected applied|hr|technical|offer|rejected)", s)
}
