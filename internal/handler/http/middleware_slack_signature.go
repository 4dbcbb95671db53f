// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/utils"
)

const (
	slackSignatureHeader = "X-Slack-Signature"
	slackTimestampHeader = "X-Slack-Request-Timestamp"

	// slackMaxClockSkew is how far X-Slack-Request-Timestamp may be from the
	// local clock in either direction.
	slackMaxClockSkew = 5 * time.Minute
)

// withSlackSignature rejects POST requests whose X-Slack-Signature does not
// match the body signed with the configured signing secret. Slack only sends
// POSTs, so the GET query form stays open. It is a no-op when no secret is
// configured.
//
// The body is read in full and restored, so handlers downstream can parse it
// as usual.
func (h *Handler) withSlackSignature(next http.Handler) http.Handler {
	if h.slackSigningSecret == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		log.Debug().Str("func", "*Handler.withSlackSignature").Msg("checking slack signature")

		if err := h.verifySlackRequest(r); err != nil {
			log.Warn().Err(err).
				Str("func", "*Handler.withSlackSignature").
				Msg("slack signature check failed")
			utils.WriteError(w, app.MsgInvalidSlackSignature, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) verifySlackRequest(r *http.Request) error {
	signature := r.Header.Get(slackSignatureHeader)
	timestamp := r.Header.Get(slackTimestampHeader)
	if signature == "" || timestamp == "" {
		return ErrMissingSlackSignature
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStaleSlackTimestamp, err)
	}
	if skew := h.now().Sub(time.Unix(unix, 0)); skew > slackMaxClockSkew || skew < -slackMaxClockSkew {
		return fmt.Errorf("%w: skew %s", ErrStaleSlackTimestamp, skew)
	}

	var body []byte
	if r.Body != nil {
		body, err = io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
		if err != nil {
			return fmt.Errorf("failed to read request body: %w", err)
		}
	}
	// restore request body
	r.Body = io.NopCloser(bytes.NewReader(body))

	if !utils.VerifySlackSignature(h.slackSigningSecret, timestamp, body, signature) {
		return ErrSlackSignatureMismatch
	}

	return nil
}
