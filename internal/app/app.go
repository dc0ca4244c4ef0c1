package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initializes the database and services from config and returns the
// wired application plus a cleanup func.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPath = filepath.Join(appDir, "tally.db")
	}

	dbStore, err := store.NewStore(dbPath, migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{Service: svc, Store: dbStore}, cleanup, nil
}

// AppDataDir is where the config file and database live by default.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}
