package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/gcstudio/studioweb/contentserver"
	"github.com/gcstudio/studioweb/internal/observability"
)

func newContentServerCommand() *cobra.Command {
	var addr, db string

	cmd := &cobra.Command{
		Use:   "content-server",
		Short: "Serve content documents from a JSON or YAML table",
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := contentserver.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if db != "" {
				cfg.DBPath = db
			}

			logger, err := observability.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			table, err := cfg.LoadTable()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			srv := contentserver.New(table,
				contentserver.WithLogger(logger),
				contentserver.WithRegistry(reg),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CONTENT_SERVER_ADDR)")
	cmd.Flags().StringVar(&db, "db", "", "table file, .json or .yaml (overrides CONTENT_DB_PATH)")
	return cmd
}
