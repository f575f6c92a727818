package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func (s *PostgresStore) AddSession(sess models.PomodoroSession) (models.PomodoroSession, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CompletedAt.IsZero() {
		sess.CompletedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO pomodoro_sessions (id, linked_id, name, duration_min, completed_at, type)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sess.ID, nullIfEmpty(sess.LinkedID), nullIfEmpty(sess.Name), sess.DurationMin,
		sess.CompletedAt, string(sess.Type))
	if err != nil {
		return models.PomodoroSession{}, err
	}
	return sess, nil
}

func (s *PostgresStore) scanSession(row interface{ Scan(...any) error }) (models.PomodoroSession, error) {
	var sess models.PomodoroSession
	var linkedID, name sql.NullString
	var sessType string

	err := row.Scan(&sess.ID, &linkedID, &name, &sess.DurationMin, &sess.CompletedAt, &sessType)
	if err != nil {
		return models.PomodoroSession{}, err
	}

	sess.LinkedID = linkedID.String
	sess.Name = name.String
	sess.Type = constants.SessionType(sessType)
	return sess, nil
}

func (s *PostgresStore) querySessions(query string, args ...any) ([]models.PomodoroSession, error) {
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

func (s *PostgresStore) GetAllSessions() ([]models.PomodoroSession, error) {
	return s.querySessions(`
		SELECT id, linked_id, name, duration_min, completed_at, type
		FROM pomodoro_sessions ORDER BY completed_at DESC`)
}

func (s *PostgresStore) GetSessionsSince(cutoff string) ([]models.PomodoroSession, error) {
	return s.querySessions(`
		SELECT id, linked_id, name, duration_min, completed_at, type
		FROM pomodoro_sessions WHERE completed_at >= $1 ORDER BY completed_at DESC`, cutoff)
}

func (s *PostgresStore) DeleteSession(id string) error {
	res, err := s.db.Exec("DELETE FROM pomodoro_sessions WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) GetStreakData() (models.StreakData, error) {
	row := s.db.QueryRow(`
		SELECT current_streak, longest_streak, last_completed_date, daily_activity
		FROM streak_data WHERE id = 1`)

	var data models.StreakData
	var lastCompleted sql.NullString
	var activity string

	err := row.Scan(&data.CurrentStreak, &data.LongestStreak, &lastCompleted, &activity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewStreakData(), nil
	}
	if err != nil {
		return models.StreakData{}, err
	}

	if lastCompleted.Valid {
		data.LastCompletedDate = lastCompleted.String
	}
	data.DailyActivity = map[string]int{}
	if err := decodeJSON(activity, &data.DailyActivity); err != nil {
		return models.StreakData{}, err
	}
	return data, nil
}

func (s *PostgresStore) SaveStreakData(data models.StreakData) error {
	activity, err := encodeJSON(data.DailyActivity)
	if err != nil {
		return err
	}
	if activity == "[]" {
		activity = "{}"
	}

	_, err = s.db.Exec(`
		INSERT INTO streak_data (id, current_streak, longest_streak, last_completed_date, daily_activity)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_completed_date = excluded.last_completed_date,
			daily_activity = excluded.daily_activity`,
		data.CurrentStreak, data.LongestStreak, nullIfEmpty(data.LastCompletedDate), activity)
	return err
}
