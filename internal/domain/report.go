package domain

// GuildOutcome is the per-guild detail row of a migration report.
type GuildOutcome struct {
	GuildID         string `json:"guild_id"`
	Players         int    `json:"players"`
	MigratedPlayers int    `json:"migrated_players"`
	MigratedItems   int    `json:"migrated_items"`
	SkippedPlayers  int    `json:"skipped_players"`
}

// ReportMeta contains metadata about a migration run
type ReportMeta struct {
	Scope           string  `json:"scope"`
	GuildsProcessed int     `json:"guilds_processed"`
	MigratedItems   int     `json:"migrated_items"`
	MigratedPlayers int     `json:"migrated_players"`
	SkippedPlayers  int     `json:"skipped_players"`
	BackupFile      string  `json:"backup_file"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// MigrationReport is the complete persisted output of a migration run
type MigrationReport struct {
	Meta    ReportMeta     `json:"meta"`
	Details []GuildOutcome `json:"details"`
}
