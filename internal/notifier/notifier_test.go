package notifier

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"devtrack/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	expectedDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if dir != expectedDefault {
		t.Errorf("expected %s, got %s", expectedDefault, dir)
	}

	// Custom lockfile dir in the tray app's settings takes precedence
	trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/devtrack/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("missing lockfile", func(t *testing.T) {
		if _, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "absent.lock")); err == nil {
			t.Error("expected error for missing lockfile")
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		for _, content := range []string{"8080|12345", "invalid", "|12345|secret", "8080|abc|secret", "99999|12345|secret", "8080|12345| "} {
			writeLockfile(content)
			if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
				t.Errorf("expected error for lockfile %q", content)
			}
		}
	})

	t.Run("process not running", func(t *testing.T) {
		writeLockfile("8080|12345|secret")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error when process is not running")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		writeLockfile("8080|12345|secret")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "other-app"}, nil
		}
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for a non-tray process")
		}
	})

	t.Run("valid", func(t *testing.T) {
		writeLockfile("8080|12345|secret")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "devtrack-tray"}, nil
		}
		port, secret, err := findAndValidateTrayProcess(lockfilePath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" || secret != "secret" {
			t.Errorf("got port=%s secret=%s", port, secret)
		}
	})
}
