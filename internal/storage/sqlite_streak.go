package storage

import (
	"database/sql"
	"errors"

	"devtrack/internal/models"
)

// GetStreakData returns the single streak row, or zeroed state for a fresh
// database.
func (s *SQLiteStore) GetStreakData() (models.StreakData, error) {
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

func (s *SQLiteStore) SaveStreakData(data models.StreakData) error {
	activity, err := encodeJSON(data.DailyActivity)
	if err != nil {
		return err
	}
	if activity == "[]" {
		activity = "{}"
	}

	_, err = s.db.Exec(`
		INSERT INTO streak_data (id, current_streak, longest_streak, last_completed_date, daily_activity)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_completed_date = excluded.last_completed_date,
			daily_activity = excluded.daily_activity`,
		data.CurrentStreak, data.LongestStreak, nullIfEmpty(data.LastCompletedDate), activity)
	return err
}
