// Package errors renders command failures for the terminal. Every fatal
// path logs through the application logger before printing, so the rotating
// log file keeps a record of what the user saw on stderr.
package errors

import (
	"fmt"
	"os"

	"devtrack/internal/logger"
)

// Format renders an error with the "Error: " prefix used on stderr.
// A nil error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a message built from a format string.
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op so callers can pass a command result through.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and prints a formatted message, then exits with code 1.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
