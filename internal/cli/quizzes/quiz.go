package quizzes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"devtrack/internal/cli"
	"devtrack/internal/keyring"
	"devtrack/internal/quiz"
)

type QuizRunCmd struct {
	Topic string `arg:"" optional:"" help:"Topic to be quizzed on. Defaults to picking from your completed topics."`
}

func (c *QuizRunCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.QuizServiceURL == "" {
		return errors.New("no quiz service configured — set one with 'devtrack settings set --quiz-service-url <url>'")
	}

	topic := c.Topic
	if topic == "" {
		if topic, err = pickCompletedTopic(ctx); err != nil {
			return err
		}
	}

	client, err := quiz.NewClient(settings.QuizServiceURL)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("Generating questions on %q...\n", topic)
	questions, err := client.Generate(reqCtx, topic)
	if err != nil {
		return fmt.Errorf("failed to generate quiz: %w", err)
	}

	correct := 0
	for i, q := range questions {
		fmt.Printf("\nQuestion %d/%d [%s]\n%s\n", i+1, len(questions), q.Difficulty, q.Text)

		var answer string
		form := huh.NewForm(huh.NewGroup(
			huh.NewText().
				Title("Your answer").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("answer cannot be empty")
					}
					return nil
				}).
				Value(&answer),
		))
		if err := form.Run(); err != nil {
			return err
		}

		evalCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		result, err := client.Evaluate(evalCtx, q, answer)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to evaluate answer: %w", err)
		}

		if result.IsCorrect {
			correct++
			fmt.Println("✓ Correct")
		} else {
			fmt.Println("✗ Not quite")
		}
		if result.Feedback != "" {
			fmt.Println("  " + result.Feedback)
		}
	}

	fmt.Printf("\nScore: %d/%d on %q\n", correct, len(questions), topic)
	if correct == len(questions) {
		data, err := ctx.RecordActivity()
		if err != nil {
			return err
		}
		fmt.Println("  " + cli.FormatStreak(data))
	}
	return nil
}

func pickCompletedTopic(ctx *cli.Context) (string, error) {
	topics, err := ctx.Store.GetAllTopics()
	if err != nil {
		return "", fmt.Errorf("failed to get topics: %w", err)
	}

	var options []huh.Option[string]
	for _, t := range topics {
		if t.CompletedAt != "" {
			options = append(options, huh.NewOption(t.Title, t.Title))
		}
	}
	if len(options) == 0 {
		return "", errors.New("no completed topics to quiz on — pass a topic explicitly")
	}

	var topic string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Quiz topic").
			Options(options...).
			Value(&topic),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return topic, nil
}

// QuizKeyCmd stores the quiz service API key in the OS keyring.
type QuizKeyCmd struct {
	Key string `arg:"" help:"API key for the quiz generation service."`
}

func (c *QuizKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetQuizAPIKey(c.Key); err != nil {
		return fmt.Errorf("failed to store quiz API key: %w", err)
	}
	fmt.Println("✓ Quiz API key stored in OS keyring")
	return nil
}
