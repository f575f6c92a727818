package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"devtrack/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "devtrack.db")
	if err := os.WriteFile(dbPath, []byte("database contents"), 0600); err != nil {
		t.Fatalf("failed to write test db: %v", err)
	}
	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != "database contents" {
		t.Errorf("backup contents = %q", data)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		t.Errorf("backup name %q does not match the expected pattern", name)
	}
}

func TestCreateBackupMissingDB(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() should fail when the database does not exist")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	dir := mgr.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	stamps := []string{"20240101-100000", "20240301-100000", "20240201-100000"}
	for _, s := range stamps {
		name := constants.BackupFilePrefix + s + constants.BackupFileSuffix
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	// Non-backup files are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups() returned %d backups, want 3", len(backups))
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	if !backups[0].Timestamp.Equal(want) {
		t.Errorf("first backup timestamp = %v, want %v", backups[0].Timestamp, want)
	}
}

func TestPruneKeepsMostRecent(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	dir := mgr.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < MaxBackups+3; i++ {
		name := constants.BackupFilePrefix + base.AddDate(0, 0, i).Format(timestampLayout) + constants.BackupFileSuffix
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("after prune got %d backups, want %d", len(backups), MaxBackups)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	if err := os.WriteFile(dbPath, []byte("corrupted"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	data, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "database contents" {
		t.Errorf("restored contents = %q", data)
	}
}
