package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clipd/internal/clip"
	"github.com/fyrsmithlabs/clipd/internal/clipboard"
	"github.com/fyrsmithlabs/clipd/internal/config"
	"github.com/fyrsmithlabs/clipd/internal/ignore"
	"github.com/fyrsmithlabs/clipd/internal/logging"
	"github.com/fyrsmithlabs/clipd/internal/store"
	"github.com/fyrsmithlabs/clipd/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and persist captures",
	Long: `Watch polls the system clipboard at the configured interval and appends
every captured item to the knowledge document, deduplicated by
(source app, content). Runs until interrupted.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.NewService(cfg.Storage.DocumentPath(), logger.Named("store"))
	if err != nil {
		return err
	}
	// A corrupt document is fatal here: starting with an empty cache
	// would overwrite it on the first capture.
	if err := st.Load(ctx); err != nil {
		return fmt.Errorf("refusing to start over an unreadable document: %w", err)
	}

	policy, err := ignore.NewPolicy(cfg.Ignore.File, cfg.Ignore.Patterns, logger.Named("ignore"))
	if err != nil {
		return err
	}

	source := clipboard.NewSystemSource()
	resolver := clipboard.NewCommandResolver(cfg.Resolver.Command, cfg.Resolver.Timeout.Duration(), logger.Named("resolver"))
	enricher := clipboard.NewCommandEnricher(cfg.Enrichment.Enabled, cfg.Enrichment.Command, cfg.Enrichment.Timeout.Duration(), logger.Named("enricher"))

	w, err := watcher.NewService(
		&watcher.Config{
			PollInterval: cfg.Watcher.PollInterval.Duration(),
			DedupWindow:  cfg.Watcher.DedupWindow.Duration(),
			Browsers:     cfg.Watcher.Browsers,
		},
		source,
		resolver,
		enricher,
		func(ctx context.Context, c clip.Clip) error {
			_, err := st.Save(ctx, c)
			return err
		},
		logger.Named("watcher"),
	)
	if err != nil {
		return err
	}
	w.SetIgnorePolicy(policy)

	go func() {
		if err := policy.Watch(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("ignore file watch stopped", zap.Error(err))
		}
	}()

	w.Start()
	defer w.Stop()

	logger.Info("clipd running",
		zap.String("document", st.Path()),
		zap.Duration("poll_interval", cfg.Watcher.PollInterval.Duration()))

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
