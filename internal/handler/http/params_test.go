package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/clumio-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func looseString(s string) *models.LooseString {
	v := models.LooseString(s)
	return &v
}

func TestParseRequestParams(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		want        models.RequestParams
		wantErr     error
	}{
		{
			name:   "GET query",
			method: http.MethodGet,
			target: "/restore?type=s3&bucket-name=logs&bucket-id=42",
			want:   models.RequestParams{Type: "s3", BucketName: "logs", BucketID: looseString("42")},
		},
		{
			name:   "GET without bucket-id",
			method: http.MethodGet,
			target: "/restore?type=ec2",
			want:   models.RequestParams{Type: "ec2"},
		},
		{
			name:   "GET ignores body",
			method: http.MethodGet,
			target: "/inventory?type=s3&account-native-id=123456789012",
			body:   `{"type":"ec2"}`,
			want:   models.RequestParams{Type: "s3", AccountNativeID: "123456789012"},
		},
		{
			name:        "POST JSON",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"type":"s3","bucket-name":"logs","bucket-id":42}`,
			want:        models.RequestParams{Type: "s3", BucketName: "logs", BucketID: looseString("42")},
		},
		{
			name:        "POST JSON with charset",
			method:      http.MethodPost,
			contentType: "application/json; charset=utf-8",
			body:        `{"type":"ec2"}`,
			want:        models.RequestParams{Type: "ec2"},
		},
		{
			name:   "POST empty body is an empty object",
			method: http.MethodPost,
			body:   "",
			want:   models.RequestParams{},
		},
		{
			name:    "POST malformed JSON",
			method:  http.MethodPost,
			body:    `{"type":`,
			wantErr: ErrInvalidJSONBody,
		},
		{
			name:    "POST JSON array",
			method:  http.MethodPost,
			body:    `["s3"]`,
			wantErr: ErrInvalidJSONBody,
		},
		{
			name:    "POST bucket-id object",
			method:  http.MethodPost,
			body:    `{"type":"s3","bucket-id":{"id":1}}`,
			wantErr: ErrInvalidJSONBody,
		},
		{
			name:        "POST form fields",
			method:      http.MethodPost,
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"type": {"s3"}, "bucket-id": {"7"}}.Encode(),
			want:        models.RequestParams{Type: "s3", BucketID: looseString("7")},
		},
		{
			name:        "POST slash command text",
			method:      http.MethodPost,
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"command": {"/clumio-restore"}, "text": {"  s3 logs 42 "}}.Encode(),
			want:        models.RequestParams{Type: "s3", BucketName: "logs", BucketID: looseString("42")},
		},
		{
			name:        "POST slash command type only",
			method:      http.MethodPost,
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"text": {"ec2"}}.Encode(),
			want:        models.RequestParams{Type: "ec2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.target
			if target == "" {
				target = "/restore"
			}
			req := httptest.NewRequest(tt.method, target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := parseRequestParams(req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLimit(t *testing.T) {
	limit, err := parseLimit("")
	require.NoError(t, err)
	assert.Zero(t, limit)

	limit, err = parseLimit(" 25 ")
	require.NoError(t, err)
	assert.Equal(t, 25, limit)

	for _, raw := range []string{"-1", "ten", "1.5"} {
		_, err = parseLimit(raw)
		assert.ErrorIs(t, err, ErrInvalidLimit, raw)
	}
}
