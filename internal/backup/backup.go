package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"devtrack/internal/constants"
)

// MaxBackups is the number of rotating copies kept per database.
const MaxBackups = constants.MaxBackups

const timestampLayout = "20060102-150405"

// Manager creates and rotates file copies of the SQLite database. The
// Postgres backend is backed up with the usual server-side tooling instead.
type Manager struct {
	dbPath string
}

// Info describes a single backup file.
type Info struct {
	Path      string
	Size      int64
	Timestamp time.Time
}

func NewManager(dbPath string) *Manager {
	return &Manager{dbPath: dbPath}
}

// GetBackupDir returns the directory backups are written to, next to the
// database file.
func (m *Manager) GetBackupDir() string {
	return filepath.Join(filepath.Dir(m.dbPath), constants.BackupDirName)
}

// CreateBackup copies the database into the backup directory, prunes to
// MaxBackups, and returns the new backup's path.
func (m *Manager) CreateBackup() (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("database file not found: %w", err)
	}

	dir := m.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := constants.BackupFilePrefix + time.Now().Format(timestampLayout) + constants.BackupFileSuffix
	dst := filepath.Join(dir, name)

	if err := copyFile(m.dbPath, dst); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	if err := m.prune(); err != nil {
		return dst, fmt.Errorf("backup created but pruning failed: %w", err)
	}
	return dst, nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.GetBackupDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ts, ok := parseBackupName(e.Name())
		if !ok {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.GetBackupDir(), e.Name()),
			Size:      fi.Size(),
			Timestamp: ts,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// RestoreBackup replaces the live database with the given backup file. A
// safety copy of the current database is taken first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.CreateBackup(); err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.dbPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

func (m *Manager) prune() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return err
		}
	}
	return nil
}

func parseBackupName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
