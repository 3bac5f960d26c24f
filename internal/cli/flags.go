package cli

import "github.com/extremedonkey/castbot-sub005/internal/config"

// Flags holds command-line flags
type Flags struct {
	DataPath  string
	BackupDir string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		DataPath:  f.DataPath,
		BackupDir: f.BackupDir,
	}
}
