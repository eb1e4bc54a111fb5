package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/zoo-api/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(loader *appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the records API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := httpapi.NewServer(app.service, httpapi.ServerOptions{
				Addr:      app.cfg.Server.ListenAddr(),
				PublicDir: app.cfg.Server.PublicDir,
				Logger:    app.logger,
				Metrics:   app.metrics,
			})

			return server.Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default \":3001\", or \":$PORT\" when PORT is set)")
	cmd.Flags().String("public-dir", "", "Serve static files from this directory at /")

	return cmd
}
