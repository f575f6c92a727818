// Package quiz is the client side of the external quiz-generation service:
// a stateless request/response boundary that produces three graded questions
// for a topic and evaluates free-text answers. Failures are surfaced to the
// caller; there are no retries.
package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"devtrack/internal/constants"
	"devtrack/internal/keyring"
	"devtrack/internal/models"
)

const (
	actionGenerate = "generate"
	actionEvaluate = "evaluate"

	questionsPerQuiz = 3
)

// Client talks to the quiz generation service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

type request struct {
	Action       string               `json:"action"`
	Topic        string               `json:"topic,omitempty"`
	QuestionText string               `json:"questionText,omitempty"`
	Answer       string               `json:"answer,omitempty"`
	Difficulty   constants.Difficulty `json:"difficulty,omitempty"`
}

type generateResponse struct {
	Questions []models.Question `json:"questions"`
	Error     string            `json:"error,omitempty"`
}

type evaluateResponse struct {
	IsCorrect bool   `json:"isCorrect"`
	Feedback  string `json:"feedback"`
	Error     string `json:"error,omitempty"`
}

// NewClient builds a client for the given service URL. The API key is read
// from the OS keyring, falling back to DEVTRACK_QUIZ_API_KEY.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("quiz service URL is not configured")
	}

	key, err := keyring.GetQuizAPIKey()
	if err != nil {
		key = os.Getenv("DEVTRACK_QUIZ_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("quiz API key not found in keyring or DEVTRACK_QUIZ_API_KEY")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  key,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Generate asks the service for three questions about the topic, one per
// difficulty band.
func (c *Client) Generate(ctx context.Context, topic string) ([]models.Question, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	body, err := c.post(ctx, request{Action: actionGenerate, Topic: topic})
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed quiz response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("quiz service: %s", resp.Error)
	}
	if err := validateQuestions(resp.Questions); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// Evaluate submits an answer for grading.
func (c *Client) Evaluate(ctx context.Context, q models.Question, answer string) (models.Answer, error) {
	body, err := c.post(ctx, request{
		Action:       actionEvaluate,
		QuestionText: q.Text,
		Answer:       answer,
		Difficulty:   q.Difficulty,
	})
	if err != nil {
		return models.Answer{}, err
	}

	var resp evaluateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Answer{}, fmt.Errorf("malformed evaluation response: %w", err)
	}
	if resp.Error != "" {
		return models.Answer{}, fmt.Errorf("quiz service: %s", resp.Error)
	}

	return models.Answer{
		QuestionID: q.ID,
		UserAnswer: answer,
		IsCorrect:  resp.IsCorrect,
		Feedback:   resp.Feedback,
	}, nil
}

func (c *Client) post(ctx context.Context, r request) ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quiz service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quiz service returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	return stripCodeFence(body), nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// stripCodeFence tolerates upstream models that wrap the JSON payload in a
// markdown code block.
func stripCodeFence(body []byte) []byte {
	if m := fenceRe.FindSubmatch(body); m != nil {
		return bytes.TrimSpace(m[1])
	}
	return body
}

func validateQuestions(qs []models.Question) error {
	if len(qs) != questionsPerQuiz {
		return fmt.Errorf("quiz service returned %d questions, want %d", len(qs), questionsPerQuiz)
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d has empty text", i+1)
		}
		switch q.Difficulty {
		case constants.DifficultyEasy, constants.DifficultyMedium, constants.DifficultyHard:
		default:
			return fmt.Errorf("question %d has unknown difficulty %q", i+1, q.Difficulty)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
