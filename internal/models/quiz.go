package models

import "devtrack/internal/constants"

// Question is a single AI-generated quiz question.
type Question struct {
	ID         string               `json:"id"`
	Text       string               `json:"text"`
	Difficulty constants.Difficulty `json:"difficulty"`
}

// Answer is the evaluation of a user's answer to a quiz question.
type Answer struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	Feedback   string `json:"feedback"`
}
