package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/tategaki/internal/config"
	"github.com/xonecas/tategaki/internal/store"
)

// loadConfig reads --config, or ~/.config/tategaki/config.toml when present.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	dir, err := config.DataDir()
	if err != nil {
		return config.LoadOrDefault("")
	}
	return config.LoadOrDefault(filepath.Join(dir, "config.toml"))
}

// setupLogging points the global logger at the configured log file. The
// terminal belongs to the UI, so nothing is logged to stderr.
func setupLogging(cfg *config.Config) (func(), error) {
	path, err := cfg.Log.FileOrDefault()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	//nolint:gosec // G304: path comes from the user's config
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.Log.LevelOrDefault())
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

// openStore opens the configured document database.
func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := cfg.Store.PathOrDefault()
	if err != nil {
		return nil, err
	}
	if cfg.Store.Path == "" {
		if _, err := config.EnsureDataDir(); err != nil {
			return nil, err
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("store opened")
	return st, nil
}

// withStore runs fn against the configured store and closes it afterwards.
func withStore(fn func(*config.Config, *store.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(cfg, st)
}
