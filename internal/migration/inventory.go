package migration

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/domain"
	"github.com/extremedonkey/castbot-sub005/internal/store"
)

// InventoryMigrator implements Migrator over the JSON player data store.
type InventoryMigrator struct {
	config  *config.Config
	store   store.Store
	reports store.Reports
}

// NewInventoryMigrator creates a new InventoryMigrator
func NewInventoryMigrator(cfg *config.Config, st store.Store, reports store.Reports) *InventoryMigrator {
	return &InventoryMigrator{
		config:  cfg,
		store:   st,
		reports: reports,
	}
}

// Run migrates inventories for one guild (or all guilds when guildID is empty).
// A backup of the store file is written before any mutation; already-keyed
// inventories are skipped so re-running is safe.
func (im *InventoryMigrator) Run(guildID string) (*domain.MigrationResult, error) {
	start := time.Now()

	data, err := im.store.Load()
	if err != nil {
		return failure("load data store: %v", err), nil
	}

	scopes := make([]string, 0, len(data))
	if guildID != "" {
		if _, ok := data[guildID]; !ok {
			return failure("guild %s not found in data store", guildID), nil
		}
		scopes = append(scopes, guildID)
	} else {
		for id := range data {
			scopes = append(scopes, id)
		}
		sort.Strings(scopes)
	}

	backupFile, err := im.store.Backup(im.config.BackupDir)
	if err != nil {
		return failure("create backup: %v", err), nil
	}

	var bar *progressbar.ProgressBar
	if guildID == "" && len(scopes) > 1 {
		bar = newGuildBar(len(scopes))
	}

	result := &domain.MigrationResult{BackupFile: backupFile}
	details := make([]domain.GuildOutcome, 0, len(scopes))

	for _, id := range scopes {
		outcome, err := migrateGuild(id, data[id])
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			// Nothing was written back; the store on disk matches the backup.
			return failure("guild %s: %v", id, err), nil
		}

		result.GuildsProcessed++
		result.MigratedItems += outcome.MigratedItems
		result.MigratedPlayers += outcome.MigratedPlayers
		result.SkippedPlayers += outcome.SkippedPlayers
		details = append(details, outcome)

		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	if err := im.store.Save(data); err != nil {
		return failure("write data store (pre-migration backup at %s): %v", backupFile, err), nil
	}

	duration := time.Since(start)
	report := &domain.MigrationReport{
		Meta: domain.ReportMeta{
			Scope:           scopeLabel(guildID),
			GuildsProcessed: result.GuildsProcessed,
			MigratedItems:   result.MigratedItems,
			MigratedPlayers: result.MigratedPlayers,
			SkippedPlayers:  result.SkippedPlayers,
			BackupFile:      backupFile,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
	if err := im.reports.Save(report); err != nil {
		return nil, fmt.Errorf("save migration report: %w", err)
	}

	result.Success = true
	return result, nil
}

// migrateGuild converts every player's legacy inventory in place.
func migrateGuild(guildID string, g *store.Guild) (domain.GuildOutcome, error) {
	outcome := domain.GuildOutcome{GuildID: guildID}
	if g == nil || len(g.Players) == 0 {
		return outcome, nil
	}

	playerIDs := make([]string, 0, len(g.Players))
	for id := range g.Players {
		playerIDs = append(playerIDs, id)
	}
	sort.Strings(playerIDs)

	for _, playerID := range playerIDs {
		p := g.Players[playerID]
		outcome.Players++
		if p == nil || len(p.Inventory) == 0 {
			continue
		}

		converted, items, migrated, err := convertInventory(p.Inventory)
		if err != nil {
			return outcome, fmt.Errorf("player %s: %w", playerID, err)
		}
		if !migrated {
			outcome.SkippedPlayers++
			continue
		}

		p.Inventory = converted
		outcome.MigratedPlayers++
		outcome.MigratedItems += items
	}

	return outcome, nil
}

// convertInventory turns a legacy array inventory into the keyed object
// format, accumulating quantities for duplicate entries. Already-keyed
// inventories are left alone (migrated is false).
func convertInventory(raw json.RawMessage) (json.RawMessage, int, bool, error) {
	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		keyed := make(map[string]domain.Item, len(legacy))
		for _, itemID := range legacy {
			entry := keyed[itemID]
			entry.Quantity++
			keyed[itemID] = entry
		}
		out, err := json.Marshal(keyed)
		if err != nil {
			return nil, 0, false, fmt.Errorf("marshal keyed inventory: %w", err)
		}
		return out, len(legacy), true, nil
	}

	var keyed map[string]domain.Item
	if err := json.Unmarshal(raw, &keyed); err == nil {
		return nil, 0, false, nil
	}

	return nil, 0, false, fmt.Errorf("unrecognized inventory format: %s", string(raw))
}

func scopeLabel(guildID string) string {
	if guildID == "" {
		return "all"
	}
	return guildID
}

func failure(format string, args ...interface{}) *domain.MigrationResult {
	return &domain.MigrationResult{
		Success: false,
		Err:     fmt.Sprintf(format, args...),
	}
}

// newGuildBar builds the progress bar shown while migrating all guilds.
func newGuildBar(count int) *progressbar.ProgressBar {
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Migrating guilds: ")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}
