package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/egkv/egkv/pkg"
	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/router"
)

var (
	cfgPath  string
	endpoint string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:     "egkvctl -e localhost:7000",
	Version: pkg.EgkvVersionRevision,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("config") {
			if _, err := config.LoadRouterCfg(cfgPath); err != nil {
				return err
			}
		}
		cfg := config.RouterConfig()
		cfg.ApplyDefaults()
		if endpoint != "" {
			cfg.CoordinatorAddr = endpoint
		}
		if cfg.CoordinatorAddr == "" {
			return fmt.Errorf("coordinator address is not set, use --endpoint or coordinator_addr")
		}
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") || level == "" {
			level = logLevel
		}
		egkvlog.ReloadLogger("", level, true)
		return nil
	},
}

func newClient() (*router.Client, error) {
	return router.NewClient(*config.RouterConfig())
}

func withClient(f func(ctx context.Context, cl *router.Client) error) error {
	cl, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = cl.Close() }()

	return f(context.Background(), cl)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to router config file")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "coordinator endpoint, overrides coordinator_addr")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "error", "log level")

	rootCmd.AddCommand(getCmd, putCmd, deleteCmd, scanCmd)
	rootCmd.AddCommand(resolveCmd, groupsCmd, serversCmd, createGroupCmd, splitCmd, uniteCmd, moveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
