package settings

import (
	"fmt"

	"devtrack/internal/cli"
	"devtrack/internal/constants"
	"devtrack/internal/utils"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Printf("work minutes:     %d\n", s.WorkMinutes)
	fmt.Printf("break minutes:    %d\n", s.BreakMinutes)
	fmt.Printf("sound enabled:    %v\n", s.SoundEnabled)
	fmt.Printf("timezone:         %s\n", s.Timezone)
	if s.QuizServiceURL != "" {
		fmt.Printf("quiz service url: %s\n", s.QuizServiceURL)
	} else {
		fmt.Println("quiz service url: (not configured)")
	}
	return nil
}

type SettingsSetCmd struct {
	WorkMinutes    int    `help:"Pomodoro work phase length in minutes." default:"-1"`
	BreakMinutes   int    `help:"Pomodoro break phase length in minutes." default:"-1"`
	Sound          string `help:"Terminal bell on phase completion (on|off)."`
	QuizServiceURL string `help:"Base URL of the quiz generation service." name:"quiz-service-url"`
	Timezone       string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.Sound != "" && c.Sound != "on" && c.Sound != "off" {
		return fmt.Errorf("invalid sound value %q (expected on|off)", c.Sound)
	}
	if c.Timezone != "" && !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	return nil
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	changed := false
	if c.WorkMinutes >= 0 {
		s.WorkMinutes = clamp(c.WorkMinutes)
		changed = true
	}
	if c.BreakMinutes >= 0 {
		s.BreakMinutes = clamp(c.BreakMinutes)
		changed = true
	}
	if c.Sound != "" {
		s.SoundEnabled = c.Sound == "on"
		changed = true
	}
	if c.QuizServiceURL != "" {
		s.QuizServiceURL = c.QuizServiceURL
		changed = true
	}
	if c.Timezone != "" {
		s.Timezone = c.Timezone
		changed = true
	}

	if !changed {
		fmt.Println("Nothing to change. See 'devtrack settings set --help' for options.")
		return nil
	}

	if err := ctx.Store.SaveSettings(s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("✓ Settings updated")
	return nil
}

// Durations outside the supported range are clamped, matching the timer.
func clamp(m int) int {
	if m < constants.MinPhaseMinutes {
		return constants.MinPhaseMinutes
	}
	if m > constants.MaxPhaseMinutes {
		return constants.MaxPhaseMinutes
	}
	return m
}
