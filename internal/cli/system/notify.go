package system

import (
	"fmt"

	"devtrack/internal/cli"
	"devtrack/internal/notifier"
)

// NotifyCmd sends a test notification through the tray app webhook.
type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Notification text." default:"devtrack test notification"`
	DryRun  bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		fmt.Println("[DryRun] " + c.Message)
		return nil
	}
	if err := notifier.New().Notify(c.Message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Println("✓ Notification sent")
	return nil
}
