package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"retitle/internal/catalog"
	"retitle/internal/config"
	"retitle/internal/logging"
	"retitle/internal/pinstore"
	"retitle/internal/resolve"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
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

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			OutputPaths: []string{
				"stderr",
				filepath.Join(cfg.Paths.LogDir, "retitle.log"),
			},
		})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// openSession loads the catalog and pin store and builds a resolution
// session. The returned cleanup releases the pin store lock.
func (c *commandContext) openSession() (*resolve.Session, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Load(cfg.Paths.CatalogPath, logger)
	if err != nil {
		return nil, nil, err
	}
	pins, err := pinstore.Open(cfg.Paths.PinDBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = pins.Close() }

	session, err := resolve.NewSession(cat, pins, cfg.MatchPolicy(), logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return session, cleanup, nil
}

// openPins opens just the pin store for pin maintenance commands.
func (c *commandContext) openPins() (*pinstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return pinstore.Open(cfg.Paths.PinDBPath)
}
