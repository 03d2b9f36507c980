package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"restaurant-orders/internal/app"
	"restaurant-orders/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		dataDir    string
	)

	root := &cobra.Command{
		Use:           "restaurant-orders",
		Short:         "Single-tenant restaurant ordering service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the ordering API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if dataDir != "" {
				cfg.Storage.DataDir = dataDir
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, cfg)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serve.Flags().StringVar(&dataDir, "data-dir", "", "collection file directory (overrides config)")

	root.AddCommand(serve)
	return root
}
