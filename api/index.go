// Package api is the serverless entrypoint of clumio-bot. Every path is
// rewritten to Handler, which serves the same router as the long-running
// server. Background workers are not started here.
package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/config"
	httphandler "github.com/MKhiriev/clumio-bot/internal/handler/http"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/service"
	"github.com/MKhiriev/clumio-bot/internal/store"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/models"
)

var entrypoint = newLazyRouter(config.GetEnvConfig, logger.NewLogger("clumio-bot-serverless"))

// Handler serves one request. The router is built on the first call and
// reused while the function instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	entrypoint.ServeHTTP(w, r)
}

type configLoader func() (*config.StructuredConfig, error)

// lazyRouter builds the router once. A build error is kept and reported on
// every request, since retrying would fail the same way until the
// environment is fixed and the instance recycled.
type lazyRouter struct {
	load   configLoader
	logger *logger.Logger

	once    sync.Once
	handler http.Handler
	err     error
}

func newLazyRouter(load configLoader, logger *logger.Logger) *lazyRouter {
	return &lazyRouter{load: load, logger: logger}
}

func (l *lazyRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l.once.Do(func() {
		l.handler, l.err = l.build(context.Background())
		if l.err != nil {
			l.logger.Err(l.err).Msg("error building router")
		}
	})

	if l.err != nil {
		utils.WriteError(w, fmt.Sprintf("%s: %v", app.MsgServerMisconfigured, l.err), http.StatusInternalServerError)
		return
	}

	l.handler.ServeHTTP(w, r)
}

func (l *lazyRouter) build(ctx context.Context) (http.Handler, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		l.logger.Warn().Err(err).Msg("invalid log level")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, l.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	m := metrics.New()

	clumio, err := adapter.NewHTTPClumioAdapter(cfg.Clumio, m, l.logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating clumio adapter: %w", err)
	}

	services, err := service.NewServices(clumio, storages, *cfg, models.NewAppBuildInfo(cfg.App.Version, "", ""), m, l.logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return httphandler.NewHandler(services, m, *cfg, l.logger).Init(), nil
}
