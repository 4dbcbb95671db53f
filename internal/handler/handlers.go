package handler

import (
	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/handler/http"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. HTTP is the only transport;
// a configuration without a listen address is rejected.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg, logger),
	}, nil
}
