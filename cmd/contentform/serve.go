package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	contentform "github.com/goliatone/go-contentform"
	"github.com/goliatone/go-contentform/internal/server"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP preview server",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("address") {
			conf.HTTP.Address, _ = cmd.Flags().GetString("address")
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		registry, err := contentform.NewRegistry(contentform.RegistryOptions{
			Vanilla: []vanilla.Option{
				vanilla.WithStylesheetURL(server.AssetsPrefix + vanilla.StylesheetName),
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}
		gen, err := newOrchestrator(ctx, conf, registry)
		if err != nil {
			return err
		}

		srv, err := server.NewServer(
			server.WithAddress(conf.HTTP.Address),
			server.WithOrchestrator(gen),
			server.WithRenderer(vanilla.Name),
			server.WithTheme(conf.Renderer.Theme, conf.Renderer.ThemeVariant),
			server.WithLogger(slog.Default()),
		)
		if err != nil {
			return errors.WithStack(err)
		}

		slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address))
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("address", "", "Listen address (CONTENTFORM_HTTP_ADDRESS)")
}
