package storage

import (
	"database/sql"
	"errors"
	"time"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func (s *SQLiteStore) AddInterview(iv models.Interview) error {
	timeline, err := encodeJSON(iv.Timeline)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO interviews (id, company, role, status, notes, applied_date, last_updated, timeline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.ID, iv.Company, iv.Role, string(iv.Status), iv.Notes, iv.AppliedDate,
		iv.LastUpdated.Format(time.RFC3339), timeline)
	return err
}

func (s *SQLiteStore) scanInterview(row interface{ Scan(...any) error }) (models.Interview, error) {
	var iv models.Interview
	var status, lastUpdated, timeline string

	err := row.Scan(&iv.ID, &iv.Company, &iv.Role, &status, &iv.Notes,
		&iv.AppliedDate, &lastUpdated, &timeline)
	if err != nil {
		return models.Interview{}, err
	}

	iv.Status = constants.InterviewStatus(status)
	if err := decodeJSON(timeline, &iv.Timeline); err != nil {
		return models.Interview{}, err
	}
	ts, err := time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		return models.Interview{}, err
	}
	iv.LastUpdated = ts
	return iv, nil
}

func (s *SQLiteStore) GetInterview(id string) (models.Interview, error) {
	row := s.db.QueryRow(`
		SELECT id, company, role, status, notes, applied_date, last_updated, timeline
		FROM interviews WHERE id = ?`, id)
	iv, err := s.scanInterview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Interview{}, ErrNotFound
	}
	return iv, err
}

func (s *SQLiteStore) GetAllInterviews() ([]models.Interview, error) {
	rows, err := s.db.Query(`
		SELECT id, company, role, status, notes, applied_date, last_updated, timeline
		FROM interviews ORDER BY last_updated DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []models.Interview
	for rows.Next() {
		iv, err := s.scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (s *SQLiteStore) UpdateInterview(iv models.Interview) error {
	timeline, err := encodeJSON(iv.Timeline)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE interviews SET company = ?, role = ?, status = ?, notes = ?,
			applied_date = ?, last_updated = ?, timeline = ?
		WHERE id = ?`,
		iv.Company, iv.Role, string(iv.Status), iv.Notes,
		iv.AppliedDate, iv.LastUpdated.Format(time.RFC3339), timeline, iv.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteInterview(id string) error {
	res, err := s.db.Exec("DELETE FROM interviews WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
