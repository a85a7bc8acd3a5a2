package main

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/config"
)

const envPrefix = "shoplist"

func newRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	var configFile string

	root := &cobra.Command{
		Use:           "shoplist",
		Short:         "Shopping list grouped by store and section",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, _ []string) error {
				if configFile == "" {
					return nil
				}
				return config.LoadFile(cmd.Flags(), configFile)
			},
			func(cmd *cobra.Command, _ []string) error {
				if err := cfg.Validate(); err != nil {
					return err
				}
				return setupLogging(cfg)
			},
		),
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file, keys are flag names")
	cfg.AddGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCommand(cfg),
		newItemsCommand(cfg),
		newAddCommand(cfg),
		newMoveCommand(cfg),
		newCheckCommand(cfg),
		newStoresCommand(cfg),
		newSectionsCommand(cfg),
	)
	return root
}

func setupLogging(cfg *config.Configuration) error {
	var zc zap.Config
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	zap.S().Debugw("configuration loaded", "config", cfg.DebugMap())
	return nil
}
