package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudnest/cloudnest/internal/config"
	"github.com/cloudnest/cloudnest/internal/initialization"
	"github.com/cloudnest/cloudnest/internal/server"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the CloudNest demo server",
		Long:  `Start the HTTP server. Every collection is seeded with demo data and lives in memory for the lifetime of the process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return runStart()
		},
	}

	return cmd
}

func runStart() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	container := initialization.NewAppContainer(cfg)
	defer container.Close()

	log.Info().
		Str("address", cfg.HTTPAddress).
		Str("share_origin", cfg.ShareOrigin).
		Bool("realtime", cfg.RealtimeEnabled).
		Msg("Starting CloudNest demo server")

	app := server.NewHTTPServer(ctx, container.ServerDependencies())

	if err := app.Listen(cfg.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
	}

	log.Info().Msg("CloudNest demo server stopped")
	return nil
}
