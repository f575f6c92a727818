package storage

import (
	"time"

	"github.com/google/uuid"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

// AddSession inserts a completed pomodoro phase and returns the stored
// record, assigning an id when the caller left it empty.
func (s *SQLiteStore) AddSession(sess models.PomodoroSession) (models.PomodoroSession, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CompletedAt.IsZero() {
		sess.CompletedAt = time.Now()
	}

	linkedID := nullIfEmpty(sess.LinkedID)
	name := nullIfEmpty(sess.Name)

	_, err := s.db.Exec(`
		INSERT INTO pomodoro_sessions (id, linked_id, name, duration_min, completed_at, type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, linkedID, name, sess.DurationMin,
		sess.CompletedAt.Format(time.RFC3339), string(sess.Type))
	if err != nil {
		return models.PomodoroSession{}, err
	}
	return sess, nil
}

func (s *SQLiteStore) scanSession(row interface{ Scan(...any) error }) (models.PomodoroSession, error) {
	var sess models.PomodoroSession
	var linkedID, name nullString
	var completedAt, sessType string

	err := row.Scan(&sess.ID, &linkedID, &name, &sess.DurationMin, &completedAt, &sessType)
	if err != nil {
		return models.PomodoroSession{}, err
	}

	sess.LinkedID = linkedID.String
	sess.Name = name.String
	sess.Type = constants.SessionType(sessType)
	ts, err := time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return models.PomodoroSession{}, err
	}
	sess.CompletedAt = ts
	return sess, nil
}

func (s *SQLiteStore) querySessions(query string, args ...any) ([]models.PomodoroSession, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.PomodoroSession
	for rows.Next() {
		sess, err := s.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) GetAllSessions() ([]models.PomodoroSession, error) {
	return s.querySessions(`
		SELECT id, linked_id, name, duration_min, completed_at, type
		FROM pomodoro_sessions ORDER BY completed_at DESC`)
}

// GetSessionsSince returns sessions completed at or after the RFC3339 cutoff.
func (s *SQLiteStore) GetSessionsSince(cutoff string) ([]models.PomodoroSession, error) {
	return s.querySessions(`
		SELECT id, linked_id, name, duration_min, completed_at, type
		FROM pomodoro_sessions WHERE completed_at >= ? ORDER BY completed_at DESC`, cutoff)
}

func (s *SQLiteStore) DeleteSession(id string) error {
	res, err := s.db.Exec("DELETE FROM pomodoro_sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
