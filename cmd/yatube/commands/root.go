// Package commands implements the yatube subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/ncobase/yatube/config"
	"github.com/ncobase/yatube/data"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/version"
	"github.com/spf13/cobra"

	_ "github.com/ncobase/yatube/data/mysql"
	_ "github.com/ncobase/yatube/data/postgres"
	_ "github.com/ncobase/yatube/data/redis"
	_ "github.com/ncobase/yatube/data/sqlite"
)

// options are the flags shared by every subcommand
type options struct {
	configFile string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "yatube",
		Short:         "A small blogging site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path (default searches ., /etc/yatube, $HOME/.yatube)")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newUserCommand(opts),
		newGroupCommand(opts),
		newVersionCommand(),
	)

	return rootCmd
}

// env is what a subcommand needs to reach the database
type env struct {
	config *config.Config
	logger *logger.Logger
	data   *data.Data
}

// setup loads the configuration, starts logging and opens the data layer.
// The returned cleanup releases all of them.
func setup(ctx context.Context, opts *options) (*env, func(), error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.StdLogger()
	log.SetVersion(version.GetVersionInfo().Version)
	logCleanup, err := log.Init(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	d, dataCleanup, err := data.New(ctx, cfg.Data, log)
	if err != nil {
		logCleanup()
		return nil, nil, fmt.Errorf("failed to initialize data layer: %w", err)
	}

	cleanup := func() {
		dataCleanup()
		logCleanup()
	}
	return &env{config: cfg, logger: log, data: d}, cleanup, nil
}
