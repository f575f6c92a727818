package storage

import (
	"database/sql"
	"errors"
	"time"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func (s *SQLiteStore) AddTopic(t models.LearningTopic) error {
	tags, err := encodeJSON(t.Tags)
	if err != nil {
		return err
	}
	subtopics, err := encodeJSON(t.Subtopics)
	if err != nil {
		return err
	}
	revisionDays, err := encodeJSON(t.RevisionDays)
	if err != nil {
		return err
	}
	revisedOn, err := encodeJSON(t.RevisedOn)
	if err != nil {
		return err
	}

	var completedAt sql.NullString
	if t.CompletedAt != "" {
		completedAt = sql.NullString{String: t.CompletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO learning_topics (id, title, description, status, tags, subtopics,
			completed_at, revision_days, revised_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, string(t.Status), tags, subtopics,
		completedAt, revisionDays, revisedOn, t.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) scanTopic(row interface{ Scan(...any) error }) (models.LearningTopic, error) {
	var t models.LearningTopic
	var status, tags, subtopics, revisionDays, revisedOn, createdAt string
	var completedAt sql.NullString

	err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &tags, &subtopics,
		&completedAt, &revisionDays, &revisedOn, &createdAt)
	if err != nil {
		return models.LearningTopic{}, err
	}

	t.Status = constants.TopicStatus(status)
	if completedAt.Valid {
		t.CompletedAt = completedAt.String
	}
	if err := decodeJSON(tags, &t.Tags); err != nil {
		return models.LearningTopic{}, err
	}
	if err := decodeJSON(subtopics, &t.Subtopics); err != nil {
		return models.LearningTopic{}, err
	}
	if err := decodeJSON(revisionDays, &t.RevisionDays); err != nil {
		return models.LearningTopic{}, err
	}
	if err := decodeJSON(revisedOn, &t.RevisedOn); err != nil {
		return models.LearningTopic{}, err
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.LearningTopic{}, err
	}
	t.CreatedAt = ts
	return t, nil
}

func (s *SQLiteStore) GetTopic(id string) (models.LearningTopic, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, status, tags, subtopics,
		       completed_at, revision_days, revised_on, created_at
		FROM learning_topics WHERE id = ?`, id)
	t, err := s.scanTopic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LearningTopic{}, ErrNotFound
	}
	return t, err
}

func (s *SQLiteStore) GetAllTopics() ([]models.LearningTopic, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, status, tags, subtopics,
		       completed_at, revision_days, revised_on, created_at
		FROM learning_topics ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []models.LearningTopic
	for rows.Next() {
		t, err := s.scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (s *SQLiteStore) UpdateTopic(t models.LearningTopic) error {
	tags, err := encodeJSON(t.Tags)
	if err != nil {
		return err
	}
	subtopics, err := encodeJSON(t.Subtopics)
	if err != nil {
		return err
	}
	revisionDays, err := encodeJSON(t.RevisionDays)
	if err != nil {
		return err
	}
	revisedOn, err := encodeJSON(t.RevisedOn)
	if err != nil {
		return err
	}

	var completedAt sql.NullString
	if t.CompletedAt != "" {
		completedAt = sql.NullString{String: t.CompletedAt, Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE learning_topics SET title = ?, description = ?, status = ?, tags = ?,
			subtopics = ?, completed_at = ?, revision_days = ?, revised_on = ?
		WHERE id = ?`,
		t.Title, t.Description, string(t.Status), tags,
		subtopics, completedAt, revisionDays, revisedOn, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteTopic(id string) error {
	res, err := s.db.Exec("DELETE FROM learning_topics WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
