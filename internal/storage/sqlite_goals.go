package storage

import (
	"database/sql"
	"errors"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func (s *SQLiteStore) AddGoal(g models.Goal) error {
	linked, err := encodeJSON(g.LinkedTopics)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO goals (id, title, type, target_count, current_count, linked_topics,
			start_date, end_date, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, string(g.Type), g.TargetCount, g.CurrentCount, linked,
		g.StartDate, g.EndDate, g.Completed)
	return err
}

func (s *SQLiteStore) scanGoal(row interface{ Scan(...any) error }) (models.Goal, error) {
	var g models.Goal
	var goalType, linked string

	err := row.Scan(&g.ID, &g.Title, &goalType, &g.TargetCount, &g.CurrentCount,
		&linked, &g.StartDate, &g.EndDate, &g.Completed)
	if err != nil {
		return models.Goal{}, err
	}

	g.Type = constants.GoalType(goalType)
	if err := decodeJSON(linked, &g.LinkedTopics); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

func (s *SQLiteStore) GetGoal(id string) (models.Goal, error) {
	row := s.db.QueryRow(`
		SELECT id, title, type, target_count, current_count, linked_topics,
		       start_date, end_date, completed
		FROM goals WHERE id = ?`, id)
	g, err := s.scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Goal{}, ErrNotFound
	}
	return g, err
}

func (s *SQLiteStore) GetAllGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, type, target_count, current_count, linked_topics,
		       start_date, end_date, completed
		FROM goals ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := s.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) UpdateGoal(g models.Goal) error {
	linked, err := encodeJSON(g.LinkedTopics)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE goals SET title = ?, type = ?, target_count = ?, current_count = ?,
			linked_topics = ?, start_date = ?, end_date = ?, completed = ?
		WHERE id = ?`,
		g.Title, string(g.Type), g.TargetCount, g.CurrentCount,
		linked, g.StartDate, g.EndDate, g.Completed, g.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteGoal(id string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
