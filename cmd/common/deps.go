// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"

	"github.com/jonesrussell/lexicrawl/internal/config"
	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// NewCommandDeps loads the validated configuration and builds the logger
// from it. Every command calls this first.
func NewCommandDeps() (*CommandDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &CommandDeps{Logger: log, Config: cfg}, nil
}
