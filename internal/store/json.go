package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/extremedonkey/castbot-sub005/internal/config"
)

// JSONStore reads and writes the player data store as a single JSON file.
type JSONStore struct {
	cfg *config.Config
}

// NewJSONStore returns a Store backed by the config's store file.
func NewJSONStore(cfg *config.Config) *JSONStore {
	return &JSONStore{cfg: cfg}
}

// Load reads and parses the player data store.
func (s *JSONStore) Load() (PlayerData, error) {
	data, err := os.ReadFile(s.cfg.GetStorePath())
	if err != nil {
		return nil, fmt.Errorf("read data store: %w", err)
	}
	var pd PlayerData
	if err := json.Unmarshal(data, &pd); err != nil {
		return nil, fmt.Errorf("parse data store: %w", err)
	}
	return pd, nil
}

// Save writes the player data store back to its file.
func (s *JSONStore) Save(pd PlayerData) error {
	data, err := json.MarshalIndent(pd, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data store: %w", err)
	}
	path := s.cfg.GetStorePath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data store dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write data store: %w", err)
	}
	return nil
}

// Backup copies the current store file bytes into dir, named with a timestamp,
// and returns the backup path. Called before any mutation so a failed
// migration can be rolled back by hand.
func (s *JSONStore) Backup(dir string) (string, error) {
	path := s.cfg.GetStorePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read data store for backup: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := fmt.Sprintf("%s-backup-%s.json", base, time.Now().Format("20060102-150405"))
	backupPath := filepath.Join(dir, name)

	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backupPath, nil
}

// ListBackups finds backup files under dir, newest first.
func ListBackups(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil // no backups yet
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("backup path is not a directory: %s", dir)
	}

	var backups []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.Contains(d.Name(), "-backup-") && strings.HasSuffix(d.Name(), ".json") {
			backups = append(backups, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}
