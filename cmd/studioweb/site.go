package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gcstudio/studioweb"
)

func newSiteCommand() *cobra.Command {
	var addr, contentURL, staticDir string

	cmd := &cobra.Command{
		Use:   "site",
		Short: "Serve the marketing site",
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := studioweb.LoadSiteConfig(envFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if contentURL != "" {
				cfg.ContentAPIURL = contentURL
			}

			var opts []studioweb.Option
			if staticDir != "" {
				opts = append(opts, studioweb.WithStaticDir(staticDir))
			}
			app := studioweb.New(cfg, opts...)
			defer app.Close()

			if err := app.Setup(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hup := make(chan os.Signal, 1)
			signal.Notify(hup, syscall.SIGHUP)
			defer signal.Stop(hup)
			go app.FlushIndexOn(ctx, hup)

			return app.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SITE_ADDR)")
	cmd.Flags().StringVar(&contentURL, "content-api", "", "content API base URL (overrides CONTENT_API_URL)")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory served under /public")
	return cmd
}
