package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/egkv/egkv/coordinator/app"
	"github.com/egkv/egkv/pkg"
	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/coord"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/qdb"
	"github.com/egkv/egkv/router/grpcclient"
)

var (
	cfgPath   string
	logLevel  string
	prettyLog bool
)

var rootCmd = &cobra.Command{
	Use:     "egkv-coordinator --config `path-to-config`",
	Version: pkg.EgkvVersionRevision,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgStr, err := config.LoadCoordinatorCfg(cfgPath)
		if err != nil {
			return err
		}
		cfg := config.CoordinatorConfig()
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("pretty-log") {
			cfg.PrettyLogging = prettyLog
		}
		egkvlog.ReloadLogger(cfg.LogFile, cfg.LogLevel, cfg.PrettyLogging)
		egkvlog.Zero.Info().Msg("Running config: " + cfgStr)

		db, err := qdb.NewQDB(cfg.QdbType, cfg.QdbAddr, cfg.MemqdbBackupPath)
		if err != nil {
			return err
		}

		pool := grpcclient.NewPool()
		defer func() { _ = pool.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		c := coord.NewCoordinator(db, pool, cfg.TransferBatchSize)
		return app.NewApp(c).Run(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "/etc/egkv/coordinator.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level")
	rootCmd.PersistentFlags().BoolVarP(&prettyLog, "pretty-log", "P", false, "enable pretty logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		egkvlog.Zero.Fatal().Err(err).Msg("")
	}
}
