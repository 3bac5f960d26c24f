package migration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/domain"
	"github.com/extremedonkey/castbot-sub005/internal/store"
)

func testMigrator(t *testing.T, storeJSON string) (*InventoryMigrator, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.New()
	cfg.StorePath = filepath.Join(dir, "playerData.json")
	cfg.BackupDir = filepath.Join(dir, "backups")
	cfg.ReportDir = dir
	cfg.ReportFile = "migration-report.json"

	if err := os.WriteFile(cfg.StorePath, []byte(storeJSON), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	st := store.NewJSONStore(cfg)
	reports := store.NewJSONReports(cfg)
	return NewInventoryMigrator(cfg, st, reports), cfg
}

const twoGuildFixture = `{
  "guild-1": {
    "players": {
      "user-a": {"inventory": ["sword", "sword", "shield"]},
      "user-b": {"inventory": ["potion"]}
    }
  },
  "guild-2": {
    "players": {
      "user-c": {"inventory": {"rope": {"quantity": 3}}}
    }
  }
}`

func TestInventoryMigrator_Run_AllGuilds(t *testing.T) {
	im, cfg := testMigrator(t, twoGuildFixture)

	result, err := im.Run("")
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got failure: %s", result.Err)
	}

	if result.GuildsProcessed != 2 {
		t.Errorf("expected 2 guilds processed, got %d", result.GuildsProcessed)
	}
	if result.MigratedPlayers != 2 {
		t.Errorf("expected 2 migrated players, got %d", result.MigratedPlayers)
	}
	if result.MigratedItems != 4 {
		t.Errorf("expected 4 migrated items, got %d", result.MigratedItems)
	}
	if result.SkippedPlayers != 1 {
		t.Errorf("expected 1 skipped player (already keyed), got %d", result.SkippedPlayers)
	}
	if result.BackupFile == "" {
		t.Error("expected a backup file path")
	}

	// Duplicates must accumulate quantity in the keyed format
	data, err := store.NewJSONStore(cfg).Load()
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	var inv map[string]domain.Item
	if err := json.Unmarshal(data["guild-1"].Players["user-a"].Inventory, &inv); err != nil {
		t.Fatalf("parse converted inventory: %v", err)
	}
	if inv["sword"].Quantity != 2 || inv["shield"].Quantity != 1 {
		t.Errorf("unexpected converted inventory: %+v", inv)
	}
}

func TestInventoryMigrator_Run_SingleGuildScope(t *testing.T) {
	im, cfg := testMigrator(t, twoGuildFixture)

	result, err := im.Run("guild-1")
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got failure: %s", result.Err)
	}
	if result.GuildsProcessed != 1 {
		t.Errorf("expected exactly 1 guild processed, got %d", result.GuildsProcessed)
	}

	// The other guild must be untouched
	data, err := store.NewJSONStore(cfg).Load()
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	var inv map[string]domain.Item
	if err := json.Unmarshal(data["guild-2"].Players["user-c"].Inventory, &inv); err != nil {
		t.Fatalf("guild-2 inventory should still parse as keyed: %v", err)
	}
	if inv["rope"].Quantity != 3 {
		t.Errorf("guild-2 inventory changed: %+v", inv)
	}
}

func TestInventoryMigrator_Run_UnknownGuild(t *testing.T) {
	im, _ := testMigrator(t, twoGuildFixture)

	result, err := im.Run("guild-404")
	if err != nil {
		t.Fatalf("unknown guild is a reported failure, not a fault: %v", err)
	}
	if result.Success {
		t.Fatal("expected reported failure for unknown guild")
	}
	if !strings.Contains(result.Err, "guild-404") || !strings.Contains(result.Err, "not found") {
		t.Errorf("unexpected error text: %s", result.Err)
	}
}

func TestInventoryMigrator_Run_Idempotent(t *testing.T) {
	im, _ := testMigrator(t, twoGuildFixture)

	first, err := im.Run("")
	if err != nil || !first.Success {
		t.Fatalf("first run failed: %v / %+v", err, first)
	}

	second, err := im.Run("")
	if err != nil {
		t.Fatalf("second run fault: %v", err)
	}
	if !second.Success {
		t.Fatalf("second run reported failure: %s", second.Err)
	}
	if second.MigratedPlayers != 0 || second.MigratedItems != 0 {
		t.Errorf("second run should migrate nothing, got players=%d items=%d", second.MigratedPlayers, second.MigratedItems)
	}
	if second.SkippedPlayers != 3 {
		t.Errorf("expected all 3 players skipped on re-run, got %d", second.SkippedPlayers)
	}
}

func TestInventoryMigrator_Run_BackupBeforeMutation(t *testing.T) {
	im, cfg := testMigrator(t, twoGuildFixture)

	original, err := os.ReadFile(cfg.StorePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	result, err := im.Run("")
	if err != nil || !result.Success {
		t.Fatalf("run failed: %v / %+v", err, result)
	}

	backup, err := os.ReadFile(result.BackupFile)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != string(original) {
		t.Error("backup must hold the pre-migration store bytes")
	}

	mutated, err := os.ReadFile(cfg.StorePath)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(mutated) == string(original) {
		t.Error("store file should have been rewritten")
	}
}

func TestInventoryMigrator_Run_MalformedInventory(t *testing.T) {
	im, cfg := testMigrator(t, `{
	  "guild-1": {
	    "players": {
	      "user-a": {"inventory": 42}
	    }
	  }
	}`)

	original, err := os.ReadFile(cfg.StorePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	result, err := im.Run("")
	if err != nil {
		t.Fatalf("malformed inventory is a reported failure, not a fault: %v", err)
	}
	if result.Success {
		t.Fatal("expected reported failure for malformed inventory")
	}
	if !strings.Contains(result.Err, "user-a") {
		t.Errorf("error should name the player: %s", result.Err)
	}

	// Nothing may be written back on failure
	after, err := os.ReadFile(cfg.StorePath)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(after) != string(original) {
		t.Error("store must be untouched after a failed run")
	}
}

func TestInventoryMigrator_Run_MissingStore(t *testing.T) {
	im, cfg := testMigrator(t, `{}`)
	if err := os.Remove(cfg.StorePath); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	result, err := im.Run("")
	if err != nil {
		t.Fatalf("missing store is a reported failure, not a fault: %v", err)
	}
	if result.Success {
		t.Fatal("expected reported failure for missing store")
	}
	if !strings.Contains(result.Err, "load data store") {
		t.Errorf("unexpected error text: %s", result.Err)
	}
}

func TestConvertInventory(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		items    int
		migrated bool
		wantErr  bool
	}{
		{
			name:     "legacy array",
			raw:      `["a", "b", "a"]`,
			items:    3,
			migrated: true,
		},
		{
			name:     "empty array",
			raw:      `[]`,
			items:    0,
			migrated: true,
		},
		{
			name:     "already keyed",
			raw:      `{"a": {"quantity": 2}}`,
			migrated: false,
		},
		{
			name:    "unrecognized",
			raw:     `"not an inventory"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, items, migrated, err := convertInventory(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if items != tt.items {
				t.Errorf("expected %d items, got %d", tt.items, items)
			}
			if migrated != tt.migrated {
				t.Errorf("expected migrated=%v, got %v", tt.migrated, migrated)
			}
		})
	}
}
