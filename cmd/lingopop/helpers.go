package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/lingopop/internal/config"
	"github.com/at-ishikawa/lingopop/internal/database"
	"github.com/at-ishikawa/lingopop/internal/inference/openai"
	"github.com/at-ishikawa/lingopop/internal/language"
	"github.com/at-ishikawa/lingopop/internal/notebook"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newInferenceClient(cfg *config.Config) (*openai.Client, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not configured")
	}
	return openai.NewClient(openai.Config{
		APIKey:        cfg.OpenAI.APIKey,
		Model:         cfg.OpenAI.Model,
		ImageModel:    cfg.OpenAI.ImageModel,
		SpeechModel:   cfg.OpenAI.SpeechModel,
		Voice:         cfg.OpenAI.Voice,
		Timeout:       time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
		RetryAttempts: cfg.OpenAI.RetryAttempts,
	}), nil
}

// openStore opens the notebook store configured in the config file. The
// returned close function releases the backing database connection when the
// mysql store is selected.
func openStore(cfg *config.Config) (*notebook.Store, func() error, error) {
	switch config.NotebookStore(cfg.Notebook.Store) {
	case config.NotebookStoreMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		store, err := notebook.NewStore(notebook.NewDBRepository(db))
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("notebook.NewStore() > %w", err)
		}
		return store, db.Close, nil
	case config.NotebookStoreFile:
		fallthrough
	default:
		store, err := notebook.NewStore(notebook.NewYAMLRepository(cfg.Notebook.Path))
		if err != nil {
			return nil, nil, fmt.Errorf("notebook.NewStore() > %w", err)
		}
		return store, func() error { return nil }, nil
	}
}

func loadSelection(cfg *config.Config) (*language.Selection, error) {
	selection, err := language.LoadSelection(cfg.Languages.StatePath, cfg.Languages.Native, cfg.Languages.Target)
	if err != nil {
		return nil, fmt.Errorf("language.LoadSelection() > %w", err)
	}
	return selection, nil
}
