package storage

import (
	"fmt"

	"devtrack/internal/models"
)

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "work_minutes":
			if _, err := fmt.Sscanf(value, "%d", &settings.WorkMinutes); err != nil {
				return models.Settings{}, fmt.Errorf("parsing work_minutes: %w", err)
			}
		case "break_minutes":
			if _, err := fmt.Sscanf(value, "%d", &settings.BreakMinutes); err != nil {
				return models.Settings{}, fmt.Errorf("parsing break_minutes: %w", err)
			}
		case "sound_enabled":
			settings.SoundEnabled = value == "true"
		case "quiz_service_url":
			settings.QuizServiceURL = value
		case "timezone":
			settings.Timezone = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := [][2]string{
		{"work_minutes", fmt.Sprintf("%d", settings.WorkMinutes)},
		{"break_minutes", fmt.Sprintf("%d", settings.BreakMinutes)},
		{"sound_enabled", fmt.Sprintf("%v", settings.SoundEnabled)},
		{"quiz_service_url", settings.QuizServiceURL},
		{"timezone", settings.Timezone},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p[0], p[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
