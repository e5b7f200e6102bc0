package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"cinelog/internal/config"
	"cinelog/internal/library"
	"cinelog/internal/logging"
	"cinelog/internal/lookup"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// newLookup builds the OMDb client when an API key is configured. A nil
// lookup is valid for every operation except add.
func (c *commandContext) newLookup(cfg *config.Config) library.Lookup {
	if strings.TrimSpace(cfg.OMDB.APIKey) == "" {
		return nil
	}
	client, err := lookup.New(cfg.OMDB.APIKey, cfg.OMDB.BaseURL)
	if err != nil {
		return nil
	}
	return client
}

// withStore opens the collection store for the duration of fn. The store
// is opened fresh per command and closed before the command returns, which
// also scopes the single-instance lock to the command.
func (c *commandContext) withStore(fn func(ctx context.Context, store *library.Store, cfg *config.Config) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	store, err := library.Open(cfg, c.newLookup(cfg), c.ensureLogger())
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(context.Background(), store, cfg)
}
