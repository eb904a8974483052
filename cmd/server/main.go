package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/egkv/egkv/egserver/app"
	"github.com/egkv/egkv/pkg"
	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/egkvlog"
)

var (
	cfgPath   string
	serverID  string
	logLevel  string
	prettyLog bool
)

var rootCmd = &cobra.Command{
	Use:     "egkv-server --config `path-to-config`",
	Version: pkg.EgkvVersionRevision,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgStr, err := config.LoadServerCfg(cfgPath)
		if err != nil {
			return err
		}
		cfg := config.ServerConfig()
		if cmd.Flags().Changed("id") {
			cfg.ServerID = serverID
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("pretty-log") {
			cfg.PrettyLogging = prettyLog
		}
		egkvlog.ReloadLogger(cfg.LogFile, cfg.LogLevel, cfg.PrettyLogging)
		egkvlog.Zero.Info().Msg("Running config: " + cfgStr)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return app.NewApp(*cfg).Run(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "/etc/egkv/server.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&serverID, "id", "", "server id, overrides server_id")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level")
	rootCmd.PersistentFlags().BoolVarP(&prettyLog, "pretty-log", "P", false, "enable pretty logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		egkvlog.Zero.Fatal().Err(err).Msg("")
	}
}
