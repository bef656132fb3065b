package main

import (
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/clipd/internal/config"
	"github.com/fyrsmithlabs/clipd/internal/logging"
	"github.com/fyrsmithlabs/clipd/internal/store"
)

// openStore loads config and returns a loaded knowledge store. CLI
// subcommands log at warn level to keep their output clean.
func openStore(cmd *cobra.Command) (store.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger("warn", cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	st, err := store.NewService(cfg.Storage.DocumentPath(), logger.Named("store"))
	if err != nil {
		return nil, err
	}
	if err := st.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return st, nil
}
