package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/infra/logger"
	"github.com/aalvaropc/paradigm/internal/infra/settings"
	"github.com/aalvaropc/paradigm/internal/paradigm"
)

type appCtx struct {
	cfg       domain.Config
	paradigms *paradigm.Registry
	logger    *slog.Logger

	cleanup func() error
}

func (a *appCtx) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// loadApp resolves configuration for cmd and sets up logging.
func loadApp(cmd *cobra.Command) (*appCtx, error) {
	configFile, _ := cmd.Flags().GetString("config")

	loader := settings.NewLoader(settings.WithConfigFile(configFile))
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	cleanup, err := logger.Setup(logger.Config{
		Dir:   cfg.Logging.Dir,
		Debug: cfg.Logging.Debug,
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "cli.logger",
			Kind: domain.KindExecution,
			Path: cfg.Logging.Dir,
			Err:  err,
		}
	}

	l := logger.L()
	if used := loader.ConfigFileUsed(); used != "" {
		l.Debug("config.loaded", "file", used)
	}

	return &appCtx{
		cfg:       cfg,
		paradigms: paradigm.Default(),
		logger:    l,
		cleanup:   cleanup,
	}, nil
}
