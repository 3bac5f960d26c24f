package migration

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/domain"
)

// Ledger records migration runs in a MySQL audit table. It is optional:
// when AUDIT_DB_HOST is not set the ledger is a no-op, so the tool works
// on machines without database access.
type Ledger struct {
	config *config.Config
}

// NewLedger creates a new Ledger
func NewLedger(cfg *config.Config) *Ledger {
	return &Ledger{config: cfg}
}

// Record inserts one row for the given run. Returns nil when auditing is disabled.
func (l *Ledger) Record(guildID string, result *domain.MigrationResult) error {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	dbHost := os.Getenv("AUDIT_DB_HOST")
	if dbHost == "" {
		return nil
	}
	dbPort := os.Getenv("AUDIT_DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("AUDIT_DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("AUDIT_DB_PASSWORD")
	dbName := os.Getenv("AUDIT_DB_DATABASE")
	if dbName == "" {
		dbName = "castbot_ops"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("connect to audit database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping audit database: %w", err)
	}

	if err := l.ensureTable(db); err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO migration_runs
		   (scope, success, migrated_items, migrated_players, skipped_players, guilds_processed, backup_file, error_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		scopeLabel(guildID),
		result.Success,
		result.MigratedItems,
		result.MigratedPlayers,
		result.SkippedPlayers,
		result.GuildsProcessed,
		result.BackupFile,
		result.Err,
	)
	if err != nil {
		return fmt.Errorf("insert audit row: %w", err)
	}
	return nil
}

// ensureTable creates the audit table if it doesn't exist
func (l *Ledger) ensureTable(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS migration_runs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		scope VARCHAR(64) NOT NULL,
		success TINYINT(1) NOT NULL,
		migrated_items INT NOT NULL,
		migrated_players INT NOT NULL,
		skipped_players INT NOT NULL,
		guilds_processed INT NOT NULL,
		backup_file VARCHAR(255) NOT NULL,
		error_text TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create audit table: %w", err)
	}
	return nil
}
