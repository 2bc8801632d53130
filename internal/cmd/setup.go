package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/finance-app/cli/internal/api"
	"github.com/gravitrone/finance-app/cli/internal/config"
	"github.com/gravitrone/finance-app/cli/internal/logging"
)

// Setup resolves the effective config for c (file, env, then flags) and
// builds the logger it asks for.
func Setup(c *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyFlags(c.Flags()); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// NewClient builds the API client described by cfg.
func NewClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.APIURL, cfg.RequestTimeout)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
