package storage

import (
	"database/sql"
	"errors"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func (s *PostgresStore) AddDailyLog(l models.DailyLog) error {
	tags, err := encodeJSON(l.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO daily_logs (id, date, tasks, notes, time_spent_min, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.Date, l.Tasks, l.Notes, l.TimeSpentMin, tags, l.CreatedAt)
	return err
}

func (s *PostgresStore) scanDailyLog(row interface{ Scan(...any) error }) (models.DailyLog, error) {
	var l models.DailyLog
	var tags string
	if err := row.Scan(&l.ID, &l.Date, &l.Tasks, &l.Notes, &l.TimeSpentMin, &tags, &l.CreatedAt); err != nil {
		return models.DailyLog{}, err
	}
	if err := decodeJSON(tags, &l.Tags); err != nil {
		return models.DailyLog{}, err
	}
	return l, nil
}

func (s *PostgresStore) GetDailyLog(id string) (models.DailyLog, error) {
	row := s.db.QueryRow(`
		SELECT id, date, tasks, notes, time_spent_min, tags, created_at
		FROM daily_logs WHERE id = $1`, id)
	l, err := s.scanDailyLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyLog{}, ErrNotFound
	}
	return l, err
}

func (s *PostgresStore) queryDailyLogs(query string, args ...any) ([]models.DailyLog, error) {
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

func (s *PostgresStore) GetDailyLogsForDate(date string) ([]models.DailyLog, error) {
	return s.queryDailyLogs(`
		SELECT id, date, tasks, notes, time_spent_min, tags, created_at
		FROM daily_logs WHERE date = $1 ORDER BY created_at`, date)
}

func (s *PostgresStore) GetAllDailyLogs() ([]models.DailyLog, error) {
	return s.queryDailyLogs(`
		SELECT id, date, tasks, notes, time_spent_min, tags, created_at
		FROM daily_logs ORDER BY date DESC, created_at DESC`)
}

func (s *PostgresStore) UpdateDailyLog(l models.DailyLog) error {
	tags, err := encodeJSON(l.Tags)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE daily_logs SET date = $1, tasks = $2, notes = $3, time_spent_min = $4, tags = $5
		WHERE id = $6`,
		l.Date, l.Tasks, l.Notes, l.TimeSpentMin, tags, l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteDailyLog(id string) error {
	res, err := s.db.Exec("DELETE FROM daily_logs WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) AddTopic(t models.LearningTopic) error {
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

	_, err = s.db.Exec(`
		INSERT INTO learning_topics (id, title, description, status, tags, subtopics,
			completed_at, revision_days, revised_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Title, t.Description, string(t.Status), tags, subtopics,
		nullIfEmpty(t.CompletedAt), revisionDays, revisedOn, t.CreatedAt)
	return err
}

func (s *PostgresStore) scanTopic(row interface{ Scan(...any) error }) (models.LearningTopic, error) {
	var t models.LearningTopic
	var status, tags, subtopics, revisionDays, revisedOn string
	var completedAt sql.NullString

	err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &tags, &subtopics,
		&completedAt, &revisionDays, &revisedOn, &t.CreatedAt)
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
	return t, nil
}

func (s *PostgresStore) GetTopic(id string) (models.LearningTopic, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, status, tags, subtopics,
		       completed_at, revision_days, revised_on, created_at
		FROM learning_topics WHERE id = $1`, id)
	t, err := s.scanTopic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LearningTopic{}, ErrNotFound
	}
	return t, err
}

func (s *PostgresStore) GetAllTopics() ([]models.LearningTopic, error) {
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

func (s *PostgresStore) UpdateTopic(t models.LearningTopic) error {
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

	res, err := s.db.Exec(`
		UPDATE learning_topics SET title = $1, description = $2, status = $3, tags = $4,
			subtopics = $5, completed_at = $6, revision_days = $7, revised_on = $8
		WHERE id = $9`,
		t.Title, t.Description, string(t.Status), tags,
		subtopics, nullIfEmpty(t.CompletedAt), revisionDays, revisedOn, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteTopic(id string) error {
	res, err := s.db.Exec("DELETE FROM learning_topics WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) AddInterview(iv models.Interview) error {
	timeline, err := encodeJSON(iv.Timeline)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO interviews (id, company, role, status, notes, applied_date, last_updated, timeline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		iv.ID, iv.Company, iv.Role, string(iv.Status), iv.Notes, iv.AppliedDate,
		iv.LastUpdated, timeline)
	return err
}

func (s *PostgresStore) scanInterview(row interface{ Scan(...any) error }) (models.Interview, error) {
	var iv models.Interview
	var status, timeline string

	err := row.Scan(&iv.ID, &iv.Company, &iv.Role, &status, &iv.Notes,
		&iv.AppliedDate, &iv.LastUpdated, &timeline)
	if err != nil {
		return models.Interview{}, err
	}

	iv.Status = constants.InterviewStatus(status)
	if err := decodeJSON(timeline, &iv.Timeline); err != nil {
		return models.Interview{}, err
	}
	return iv, nil
}

func (s *PostgresStore) GetInterview(id string) (models.Interview, error) {
	row := s.db.QueryRow(`
		SELECT id, company, role, status, notes, applied_date, last_updated, timeline
		FROM interviews WHERE id = $1`, id)
	iv, err := s.scanInterview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Interview{}, ErrNotFound
	}
	return iv, err
}

func (s *PostgresStore) GetAllInterviews() ([]models.Interview, error) {
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

func (s *PostgresStore) UpdateInterview(iv models.Interview) error {
	timeline, err := encodeJSON(iv.Timeline)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE interviews SET company = $1, role = $2, status = $3, notes = $4,
			applied_date = $5, last_updated = $6, timeline = $7
		WHERE id = $8`,
		iv.Company, iv.Role, string(iv.Status), iv.Notes,
		iv.AppliedDate, iv.LastUpdated, timeline, iv.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteInterview(id string) error {
	res, err := s.db.Exec("DELETE FROM interviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) AddGoal(g models.Goal) error {
	linked, err := encodeJSON(g.LinkedTopics)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO goals (id, title, type, target_count, current_count, linked_topics,
			start_date, end_date, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		g.ID, g.Title, string(g.Type), g.TargetCount, g.CurrentCount, linked,
		g.StartDate, g.EndDate, g.Completed)
	return err
}

func (s *PostgresStore) scanGoal(row interface{ Scan(...any) error }) (models.Goal, error) {
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

func (s *PostgresStore) GetGoal(id string) (models.Goal, error) {
	row := s.db.QueryRow(`
		SELECT id, title, type, target_count, current_count, linked_topics,
		       start_date, end_date, completed
		FROM goals WHERE id = $1`, id)
	g, err := s.scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Goal{}, ErrNotFound
	}
	return g, err
}

func (s *PostgresStore) GetAllGoals() ([]models.Goal, error) {
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

func (s *PostgresStore) UpdateGoal(g models.Goal) error {
	linked, err := encodeJSON(g.LinkedTopics)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE goals SET title = $1, type = $2, target_count = $3, current_count = $4,
			linked_topics = $5, start_date = $6, end_date = $7, completed = $8
		WHERE id = $9`,
		g.Title, string(g.Type), g.TargetCount, g.CurrentCount,
		linked, g.StartDate, g.EndDate, g.Completed, g.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteGoal(id string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
