package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/service"
	"github.com/MKhiriev/clumio-bot/internal/store"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/models"
	"github.com/spf13/cobra"
)

// app is what every subcommand runs against.
type app struct {
	services *service.Services
	close    func() error
}

type appBuilder func(ctx context.Context) (*app, error)

// buildApp wires the services from environment configuration. Metrics are
// not collected by the CLI.
func buildApp(ctx context.Context) (*app, error) {
	log := logger.NewLogger("clumioctl")

	cfg, err := config.GetEnvConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("invalid log level")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	clumio, err := adapter.NewHTTPClumioAdapter(cfg.Clumio, nil, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating clumio adapter: %w", err)
	}

	services, err := service.NewServices(clumio, storages, *cfg, models.NewAppBuildInfo(cfg.App.Version, "", ""), nil, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &app{services: services, close: storages.Close}, nil
}

// cli owns the lazily built app so that it can be released after the
// command finished, whatever its outcome.
type cli struct {
	build appBuilder
	app   *app
}

func (c *cli) current() *app { return c.app }

func (c *cli) close() error {
	if c.app == nil || c.app.close == nil {
		return nil
	}
	err := c.app.close()
	c.app = nil
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clumioctl",
		Short: "Operator CLI for clumio-bot",
		Long: `A CLI tool to run clumio-bot operations without going through Slack.
Configuration is read from the same environment variables as the server
(CLUMIO_API_TOKEN, CLUMIO_API_BASE_URL, STORAGE_DB_DATABASE_URI, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			c.app = a

			// restore audit records made from the CLI carry their own trace id
			cmd.SetContext(utils.WithTraceID(cmd.Context(), utils.NewUUIDGenerator().Generate()))
			return nil
		},
	}

	rootCmd.AddCommand(
		newInventoryCmd(c.current),
		newRestoreCmd(c.current),
		newHistoryCmd(c.current),
		newPruneCmd(c.current),
		newCheckCmd(c.current),
	)

	return rootCmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
