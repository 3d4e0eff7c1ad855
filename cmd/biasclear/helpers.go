package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/bws82/biasclear/internal/catalog"
	"github.com/bws82/biasclear/internal/domain"
	"github.com/bws82/biasclear/internal/model"
	"github.com/bws82/biasclear/internal/scorer"
	"github.com/bws82/biasclear/internal/storage"
)

// loadCatalog builds the pattern catalog, from a pattern file if one is
// configured, otherwise the built-ins.
func loadCatalog() (*catalog.Catalog, error) {
	if path := viper.GetString("scan.patterns_file"); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load()
}

// loadProfiles builds the weighting profiles and the scorer config, merging
// a profiles file over the built-ins when configured.
func loadProfiles() (*domain.Profiles, scorer.Config, error) {
	cfg := scorer.DefaultConfig()

	path := viper.GetString("scan.profiles_file")
	if path == "" {
		return domain.Defaults(), cfg, nil
	}

	profiles, floors, err := domain.LoadFile(path)
	if err != nil {
		return nil, cfg, err
	}
	for tier, floor := range floors {
		cfg.Floors[tier] = floor
	}
	return profiles, cfg, nil
}

// initStorage opens the scan-history database at the configured path.
func initStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "biasclear", "history.db")
	}
	return storage.NewSQLiteStorage(dbPath)
}

// domainFlag reads the domain selection, defaulting to general.
func domainFlag(value string) model.Domain {
	if value == "" {
		return model.DomainGeneral
	}
	return model.Domain(value)
}
