package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/models"
	"github.com/go-resty/resty/v2"
)

const (
	s3InventoryPath  = "/datasources/protection-groups/s3-assets"
	ec2InventoryPath = "/inventory/protected-items/aws/ec2"
	s3RestorePath    = "/restore/aws/s3"
	ec2RestorePath   = "/restore/aws/ec2"
	connectionsPath  = "/connections/aws"

	apiVersionHeader = "Clumio-Api-Version"
)

type httpClumioAdapter struct {
	client *utils.HTTPClient

	token                  string
	defaultAccountNativeID string

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPClumioAdapter constructs a resty implementation of [ClumioAdapter].
// It normalises and validates cfg.APIBaseURL and configures the underlying
// HTTP client with the resolved base URL, request timeout, content type and
// API version header. The bearer token is attached per request.
//
// m may be nil.
//
// Returns an error if cfg.APIBaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPClumioAdapter(cfg config.Clumio, m *metrics.Metrics, logger *logger.Logger) (ClumioAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid clumio api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiVersionHeader, cfg.APIVersion)

	return &httpClumioAdapter{
		client:                 client,
		token:                  strings.TrimSpace(cfg.APIToken),
		defaultAccountNativeID: cfg.AccountNativeID,
		metrics:                m,
		logger:                 logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetInventory implements [ClumioAdapter].
//
//	s3:  GET /datasources/protection-groups/s3-assets?filter={"account_native_id":{"$eq":"<id>"}}
//	ec2: GET /inventory/protected-items/aws/ec2
func (h *httpClumioAdapter) GetInventory(ctx context.Context, req models.InventoryRequest) (json.RawMessage, error) {
	request := h.authedRequest(ctx)

	var path string
	switch req.Type {
	case models.S3:
		accountID := req.AccountNativeID
		if accountID == "" {
			accountID = h.defaultAccountNativeID
		}
		filter, err := accountFilter(accountID)
		if err != nil {
			return nil, fmt.Errorf("build s3 inventory filter: %w", err)
		}
		request.SetQueryParam("filter", filter)
		path = s3InventoryPath
	case models.EC2:
		path = ec2InventoryPath
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidInventoryType, req.Type)
	}

	return h.do(request, "inventory", resty.MethodGet, path)
}

// Restore implements [ClumioAdapter]. It POSTs to /restore/aws/{s3,ec2}.
// bucket_id is sent as a JSON number when it consists of digits only and as
// a string otherwise.
func (h *httpClumioAdapter) Restore(ctx context.Context, req models.RestoreRequest) (json.RawMessage, error) {
	var path string
	switch req.Type {
	case models.S3:
		path = s3RestorePath
	case models.EC2:
		path = ec2RestorePath
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidInventoryType, req.Type)
	}

	request := h.authedRequest(ctx).SetBody(restoreBody(req))

	return h.do(request, "restore", resty.MethodPost, path)
}

// Ping implements [ClumioAdapter] by listing at most one AWS connection.
func (h *httpClumioAdapter) Ping(ctx context.Context) error {
	request := h.authedRequest(ctx).SetQueryParam("limit", "1")

	_, err := h.do(request, "ping", resty.MethodGet, connectionsPath)
	return err
}

// do executes the request, records upstream metrics and returns the body
// after checking that it is a JSON document.
func (h *httpClumioAdapter) do(request *resty.Request, operation, method, path string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := request.Execute(method, path)
	if err != nil {
		h.metrics.ObserveUpstream(operation, 0, time.Since(start))
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUpstream, method, path, err)
	}
	h.metrics.ObserveUpstream(operation, resp.StatusCode(), time.Since(start))

	h.logger.Debug().
		Str("operation", operation).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("clumio api call")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s %s", ErrUpstreamMalformedResponse, method, path)
	}

	return json.RawMessage(body), nil
}

func (h *httpClumioAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func accountFilter(accountNativeID string) (string, error) {
	filter := map[string]map[string]string{
		"account_native_id": {"$eq": accountNativeID},
	}

	raw, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func restoreBody(req models.RestoreRequest) map[string]any {
	body := make(map[string]any, 2)

	if req.BucketName != "" {
		body["bucket_name"] = req.BucketName
	}

	if req.BucketID != "" {
		if isDigits(req.BucketID) {
			if id, err := strconv.ParseInt(req.BucketID, 10, 64); err == nil {
				body["bucket_id"] = id
				return body
			}
		}
		body["bucket_id"] = req.BucketID
	}

	return body
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
