package quiz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func testClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		apiKey:  "test-key",
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer test-key" {
				t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
			}
			w.Write([]byte(`{"questions":[
				{"id":"1","text":"What is a slice?","difficulty":"easy"},
				{"id":"2","text":"How does append grow capacity?","difficulty":"medium"},
				{"id":"3","text":"When does a slice alias its backing array?","difficulty":"hard"}
			]}`))
		}))
		defer srv.Close()

		qs, err := testClient(srv.URL).Generate(context.Background(), "slices")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(qs) != 3 {
			t.Fatalf("got %d questions, want 3", len(qs))
		}
		if qs[0].Difficulty != constants.DifficultyEasy {
			t.Errorf("first question difficulty = %q, want easy", qs[0].Difficulty)
		}
	})

	t.Run("fenced json tolerated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("```json\n{\"questions\":[" +
				`{"id":"1","text":"q1","difficulty":"easy"},` +
				`{"id":"2","text":"q2","difficulty":"medium"},` +
				`{"id":"3","text":"q3","difficulty":"hard"}]}` + "\n```"))
		}))
		defer srv.Close()

		qs, err := testClient(srv.URL).Generate(context.Background(), "maps")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(qs) != 3 {
			t.Errorf("got %d questions, want 3", len(qs))
		}
	})

	t.Run("wrong question count rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"questions":[{"id":"1","text":"q1","difficulty":"easy"}]}`))
		}))
		defer srv.Close()

		if _, err := testClient(srv.URL).Generate(context.Background(), "maps"); err == nil {
			t.Error("Generate() should reject a 1-question response")
		}
	})

	t.Run("unknown difficulty rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"questions":[
				{"id":"1","text":"q1","difficulty":"easy"},
				{"id":"2","text":"q2","difficulty":"brutal"},
				{"id":"3","text":"q3","difficulty":"hard"}]}`))
		}))
		defer srv.Close()

		if _, err := testClient(srv.URL).Generate(context.Background(), "maps"); err == nil {
			t.Error("Generate() should reject an unknown difficulty")
		}
	})

	t.Run("service error surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"AI service not configured"}`))
		}))
		defer srv.Close()

		if _, err := testClient(srv.URL).Generate(context.Background(), "maps"); err == nil {
			t.Error("Generate() should surface a 500")
		}
	})

	t.Run("empty topic rejected locally", func(t *testing.T) {
		if _, err := testClient("http://unused").Generate(context.Background(), "  "); err == nil {
			t.Error("Generate() should reject an empty topic without a request")
		}
	})
}

func TestEvaluate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"isCorrect":true,"feedback":"Covers the growth factor correctly."}`))
	}))
	defer srv.Close()

	q := models.Question{ID: "2", Text: "How does append grow capacity?", Difficulty: constants.DifficultyMedium}
	ans, err := testClient(srv.URL).Evaluate(context.Background(), q, "doubles until 1024 then 1.25x")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !ans.IsCorrect {
		t.Error("IsCorrect = false, want true")
	}
	if ans.QuestionID != "2" {
		t.Errorf("QuestionID = %q, want 2", ans.QuestionID)
	}
	if ans.Feedback == "" {
		t.Error("Feedback should be populated")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(stripCodeFence([]byte(tt.in))); got != tt.want {
				t.Errorf("stripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}
