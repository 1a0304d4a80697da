package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"catalogdiff/internal/config"
	"catalogdiff/internal/logging"
	"catalogdiff/internal/pipeline"
	"catalogdiff/internal/storage"
)

type commandContext struct {
	configOnce sync.Once
	config     config.Config
	configErr  error
	logger     *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logging.Setup(cfg.LogLevel, cfg.LogFormat)
	})
	return c.config, c.configErr
}

// currency resolves the --currency flag against the configured default and
// the allowed list.
func (c *commandContext) currency(flag string) (string, error) {
	value := strings.ToUpper(strings.TrimSpace(flag))
	if value == "" {
		value = c.config.Currency
	}
	if err := c.config.ValidateCurrency(value); err != nil {
		return "", err
	}
	return value, nil
}

// openStore opens the run ledger, or returns nil when recording is off.
func (c *commandContext) openStore() (*storage.DB, error) {
	if !c.config.RecordRuns {
		return nil, nil
	}
	db, err := storage.Open(c.config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open run ledger: %w", err)
	}
	return db, nil
}

func readInput(path string) (pipeline.InputFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return pipeline.InputFile{}, fmt.Errorf("input path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.InputFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return pipeline.InputFile{Name: filepath.Base(path), Data: data}, nil
}

func readOptionalInput(path string) (*pipeline.InputFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	in, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
