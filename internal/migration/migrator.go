package migration

import "github.com/extremedonkey/castbot-sub005/internal/domain"

// Migrator converts legacy inventory arrays to the keyed object format.
// An empty guildID means every guild in the data store. Anticipated problems
// (missing guild, unreadable store) come back as Success:false with Err set;
// a non-nil error means something genuinely unexpected happened.
type Migrator interface {
	Run(guildID string) (*domain.MigrationResult, error)
}
