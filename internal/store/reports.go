package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/domain"
)

// JSONReports stores migration reports in a JSON file under the configured path.
type JSONReports struct {
	cfg *config.Config
}

// NewJSONReports returns a Reports that reads/writes the config's report path.
func NewJSONReports(cfg *config.Config) *JSONReports {
	return &JSONReports{cfg: cfg}
}

// Save writes the migration report to the configured JSON file.
func (r *JSONReports) Save(report *domain.MigrationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	path := r.cfg.GetReportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last migration report from the configured JSON file.
func (r *JSONReports) Load() (*domain.MigrationReport, error) {
	data, err := os.ReadFile(r.cfg.GetReportPath())
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.MigrationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
