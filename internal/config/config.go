package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Data store settings
	StorePath string
	BackupDir string

	// Report output settings
	ReportFile string
	ReportDir  string

	// Remote setup settings
	RemoteUser    string
	RemoteHost    string
	RemoteDir     string
	RemoteTimeout time.Duration
	RemoteLogPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	DataPath  string
	BackupDir string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		StorePath:     DefaultStorePath,
		BackupDir:     DefaultBackupDir,
		ReportFile:    DefaultReportFile,
		ReportDir:     DefaultReportDir,
		RemoteUser:    DefaultRemoteUser,
		RemoteHost:    DefaultRemoteHost,
		RemoteDir:     DefaultRemoteDir,
		RemoteTimeout: DefaultRemoteTimeout,
		RemoteLogPath: DefaultRemoteLogPath,
	}
}

// Load creates a config, applies .env overrides, then flag overrides
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// .env is optional; environment variables win over defaults
	_ = godotenv.Load()

	cfg.StorePath = envOr("CASTBOT_DATA_PATH", cfg.StorePath)
	cfg.BackupDir = envOr("CASTBOT_BACKUP_DIR", cfg.BackupDir)
	cfg.RemoteUser = envOr("CASTBOT_REMOTE_USER", cfg.RemoteUser)
	cfg.RemoteHost = envOr("CASTBOT_REMOTE_HOST", cfg.RemoteHost)
	cfg.RemoteDir = envOr("CASTBOT_REMOTE_DIR", cfg.RemoteDir)

	if flags.DataPath != "" {
		cfg.StorePath = flags.DataPath
	}
	if flags.BackupDir != "" {
		cfg.BackupDir = flags.BackupDir
	}

	return cfg
}

// GetStorePath returns the path of the player data store file
func (c *Config) GetStorePath() string {
	return c.StorePath
}

// GetReportPath returns the full path to the report JSON file (absolute so
// migrate, status and report always read/write the same file regardless of cwd).
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.ReportDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetRemoteTarget returns the user@host string for the production box
func (c *Config) GetRemoteTarget() string {
	return c.RemoteUser + "@" + c.RemoteHost
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
