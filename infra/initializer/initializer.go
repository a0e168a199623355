package initializer

import (
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/responsibility/pkg/chain"
	"github.com/amirasaad/responsibility/pkg/config"
)

// InitializeDependencies sets up logging and builds the configured chain.
// Logs are written to stderr.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	return initializeDependencies(cfg, os.Stderr)
}

func initializeDependencies(cfg *config.App, logOut io.Writer) (*config.Deps, error) {
	if cfg == nil || cfg.Log == nil || cfg.Chain == nil {
		return nil, fmt.Errorf("initialize dependencies: incomplete config")
	}

	logger := setupLogger(cfg.Log, logOut)
	logger.Info("Initializing dependencies", "env", cfg.Env)

	head, err := chain.NewBuilder(logger).BuildDuplicateChain(cfg.Chain.Length, cfg.Chain.MaxPayload)
	if err != nil {
		logger.Error("Failed to build chain", "error", err)
		return nil, fmt.Errorf("build chain: %w", err)
	}

	c, err := chain.New(head, logger)
	if err != nil {
		return nil, fmt.Errorf("create chain: %w", err)
	}
	logger.Info("Chain ready", "handlers", c.Len())

	return &config.Deps{
		Chain:  c,
		Logger: logger,
		Config: cfg,
	}, nil
}
