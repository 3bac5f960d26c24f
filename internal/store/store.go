package store

import (
	"encoding/json"

	"github.com/extremedonkey/castbot-sub005/internal/domain"
)

// PlayerData is the whole data store: guilds keyed by guild ID.
type PlayerData map[string]*Guild

// Guild holds one guild's slice of the data store.
type Guild struct {
	Name    string             `json:"name,omitempty"`
	Players map[string]*Player `json:"players"`
}

// Player is one player record. Inventory is kept raw because the store may
// hold either the legacy array format or the keyed object format.
type Player struct {
	Name      string          `json:"name,omitempty"`
	Currency  int             `json:"currency,omitempty"`
	Inventory json.RawMessage `json:"inventory,omitempty"`
}

// Store loads and saves the player data store.
type Store interface {
	Load() (PlayerData, error)
	Save(data PlayerData) error
	// Backup copies the current store file into dir and returns the copy's path.
	Backup(dir string) (string, error)
}

// Reports persists and loads migration reports (for the status and report commands).
type Reports interface {
	Save(report *domain.MigrationReport) error
	Load() (*domain.MigrationReport, error)
}
