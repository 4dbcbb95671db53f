package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	upstreamErr := &UpstreamError{
		StatusCode: resp.StatusCode(),
		Detail:     errorDetail(resp.Body(), resp.StatusCode()),
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		upstreamErr.kind = ErrUpstreamBadRequest
	case resp.StatusCode() == http.StatusUnauthorized:
		upstreamErr.kind = ErrUpstreamUnauthorized
	case resp.StatusCode() == http.StatusForbidden:
		upstreamErr.kind = ErrUpstreamForbidden
	case resp.StatusCode() == http.StatusNotFound:
		upstreamErr.kind = ErrUpstreamNotFound
	case resp.StatusCode() >= http.StatusInternalServerError:
		upstreamErr.kind = ErrUpstreamServer
	default:
		upstreamErr.kind = ErrUpstream
	}

	return upstreamErr
}

func errorDetail(body []byte, statusCode int) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return http.StatusText(statusCode)
	}

	if json.Valid(trimmed) {
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err == nil {
			return compact.String()
		}
	}

	return strings.TrimSpace(string(body))
}
