package http

import (
	"time"

	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	slackSigningSecret string
	requestTimeout     time.Duration
	now                func() time.Time

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case /metrics
// answers 404 and nothing is recorded.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		metrics:            m,
		slackSigningSecret: cfg.App.SlackSigningSecret,
		requestTimeout:     cfg.Server.RequestTimeout,
		now:                time.Now,
		logger:             logger,
	}
}
