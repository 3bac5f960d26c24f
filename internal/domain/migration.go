package domain

// MigrationResult represents the outcome of a single inventory migration run.
// Err is set only when Success is false.
type MigrationResult struct {
	Success         bool
	MigratedItems   int
	MigratedPlayers int
	SkippedPlayers  int
	GuildsProcessed int
	BackupFile      string
	Err             string
}
