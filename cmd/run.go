package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foodverse/foodverse/internal/app"
	"github.com/foodverse/foodverse/internal/layout"
	"github.com/foodverse/foodverse/internal/logging"
	"github.com/foodverse/foodverse/internal/nav"
)

// runApp loads config and the dataset, builds the navigation machine and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	logPath, err := cfg.ResolveLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	log, closer := logging.New(logging.Options{Path: logPath, Debug: cfg.Debug})
	defer closer.Close()

	log.Info("starting foodverse",
		zap.String("version", version),
		zap.String("dataset", store.Version()),
		zap.Int("diseases", store.Len()),
	)

	machine := nav.New(store,
		nav.WithLayout(layout.New(cfg.RingRadius)),
		nav.WithLogger(log),
		nav.WithMinViewportWidth(cfg.MinViewportWidth),
		nav.WithAdvanceDelay(cfg.AdvanceDelay),
	)

	return app.Run(app.Options{
		Machine: machine,
		Config:  cfg,
		Logger:  log,
	})
}
