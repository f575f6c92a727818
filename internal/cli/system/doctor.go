package system

import (
	"fmt"

	"devtrack/internal/backup"
	"devtrack/internal/cli"
	"devtrack/internal/keyring"
	"devtrack/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		current, latest, err := ctx.Store.SchemaStatus()
		switch {
		case err != nil:
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		case current > latest:
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: database version %d is newer than supported version %d\n", current, latest)
			hasError = true
		case current < latest:
			fmt.Printf("⚠ Schema version: %d/%d (run 'devtrack migrate')\n", current, latest)
		default:
			fmt.Printf("✓ Schema version: OK (%d)\n", current)
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if settings, err := ctx.Store.GetSettings(); err != nil {
			fmt.Printf("❌ Settings readable: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings readable: OK\n")
			if settings.QuizServiceURL == "" {
				fmt.Printf("ℹ Quiz service: not configured (quiz commands unavailable)\n")
			} else {
				fmt.Printf("✓ Quiz service: configured\n")
			}
		}
	}

	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		fmt.Printf("⊘ Backups present: SKIPPED (PostgreSQL backend)\n")
	} else {
		mgr := backup.NewManager(ctx.Store.GetConfigPath())
		if backups, err := mgr.ListBackups(); err != nil || len(backups) == 0 {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   No backups found. Run 'devtrack backup create'\n")
		} else {
			fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
		}
	}

	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: available\n")
	} else {
		fmt.Printf("⚠ OS keyring: unavailable (credentials fall back to environment variables)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
