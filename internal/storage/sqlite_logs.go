package storage

import (
	"database/sql"
	"errors"
	"time"

	"devtrack/internal/models"
)

func (s *SQLiteStore) AddDailyLog(l models.DailyLog) error {
	tags, err := encodeJSON(l.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO daily_logs (id, date, tasks, notes, time_spent_min, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Date, l.Tasks, l.Notes, l.TimeSpentMin, tags, l.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) scanDailyLog(row interface{ Scan(...any) error }) (models.DailyLog, error) {
	var l models.DailyLog
	var tags, createdAt string
	if err := row.Scan(&l.ID, &l.Date, &l.Tasks, &l.Notes, &l.TimeSpentMin, &tags, &createdAt); err != nil {
		return models.DailyLog{}, err
	}
	if err := decodeJSON(tags, &l.Tags); err != nil {
		return models.DailyLog{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.DailyLog{}, err
	}
	l.CreatedAt = t
	return l, nil
}

func (s *SQLiteStore) GetDailyLog(id string) (models.DailyLog, error) {
	row := s.db.QueryRow(`
		SELECT id, date, tasks, notes, time_spent_min, tags, created_at
		FROM daily_logs WHERE id = ?`, id)
	l, err := s.scanDailyLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyLog{}, ErrNotFound
	}
	return l, err
}

func (s *SQLiteStore) queryDailyLogs(query string, args ...any) ([]models.DailyLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		l, err := s.scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) GetDailyLogsForDate(date string) ([]models.DailyLog, error) {
	return s.queryDailyLogs(`
		SELECT id, date, tasks, notes, time_spent_min, tags, created_at
		FROM daily_logs WHERE date = ? ORDER BY created_at`, date)
}

func (s *SQLiteStore) GetAllDailyLogs() ([]models.DailyLog, error) {
	return s.queryDailyLogs(`
		SELECT id, date, tasks, notes, time_spent_min, tags, created_at
		FROM daily_logs ORDER BY date DESC, created_at DESC`)
}

func (s *SQLiteStore) UpdateDailyLog(l models.DailyLog) error {
	tags, err := encodeJSON(l.Tags)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE daily_logs SET date = ?, tasks = ?, notes = ?, time_spent_min = ?, tags = ?
		WHERE id = ?`,
		l.Date, l.Tasks, l.Notes, l.TimeSpentMin, tags, l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteDailyLog(id string) error {
	res, err := s.db.Exec("DELETE FROM daily_logs WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
