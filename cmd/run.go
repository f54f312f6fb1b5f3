package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/app"
	"github.com/abhisek/quizmate/internal/config"
	"github.com/abhisek/quizmate/internal/host"
	"github.com/abhisek/quizmate/internal/locale"
	"github.com/abhisek/quizmate/internal/logging"
)

// runApp resolves configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := locale.New(cfg.Language)
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "api", client.BaseURL(), "lang", cfg.Language)

	return app.Run(app.Options{
		Source:  client,
		Channel: host.Detect(cfg.Host, logger),
		Catalog: catalog,
		Logger:  logger,
	})
}

// openLog sets up file logging for cfg.
func openLog(cmd *cobra.Command, cfg config.Config) (*slog.Logger, func() error, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	logger, closeFn, err := logging.Setup(cfg.LogPath, debug)
	if err != nil {
		return nil, nil, fmt.Errorf("set up logging: %w", err)
	}
	return logger, closeFn, nil
}
