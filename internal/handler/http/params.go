package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/clumio-bot/models"
)

// Parameter names shared by the query string, JSON bodies and Slack forms.
const (
	paramType            = "type"
	paramBucketName      = "bucket-name"
	paramBucketID        = "bucket-id"
	paramAccountNativeID = "account-native-id"

	// slackTextParam carries the free-form arguments of a slash command.
	slackTextParam = "text"
)

const maxRequestBodySize = 1 << 20

// parseRequestParams reads /inventory and /restore parameters:
//   - GET: query string;
//   - POST form (Slack slash commands): form fields, falling back to the
//     "text" field parsed as "<type> [bucket-name] [bucket-id]";
//   - any other POST: a JSON object. An empty body is treated as {}.
func parseRequestParams(r *http.Request) (models.RequestParams, error) {
	if r.Method == http.MethodGet {
		return paramsFromValues(r.URL.Query()), nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return paramsFromForm(r)
	default:
		return paramsFromJSON(r)
	}
}

func paramsFromJSON(r *http.Request) (models.RequestParams, error) {
	var params models.RequestParams
	if r.Body == nil {
		return params, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		return params, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return params, nil
	}

	if err = json.Unmarshal(body, &params); err != nil {
		return models.RequestParams{}, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	return params, nil
}

func paramsFromForm(r *http.Request) (models.RequestParams, error) {
	if err := r.ParseForm(); err != nil {
		return models.RequestParams{}, fmt.Errorf("%w: %w", ErrInvalidFormBody, err)
	}

	params := paramsFromValues(r.PostForm)
	if params.Type == "" {
		params = paramsFromSlackText(r.PostForm.Get(slackTextParam))
	}
	return params, nil
}

func paramsFromValues(values url.Values) models.RequestParams {
	params := models.RequestParams{
		Type:            values.Get(paramType),
		BucketName:      values.Get(paramBucketName),
		AccountNativeID: values.Get(paramAccountNativeID),
	}
	if values.Has(paramBucketID) {
		bucketID := models.LooseString(values.Get(paramBucketID))
		params.BucketID = &bucketID
	}
	return params
}

// paramsFromSlackText parses "/clumio s3 my-bucket 42" style arguments.
func paramsFromSlackText(text string) models.RequestParams {
	var params models.RequestParams

	fields := strings.Fields(text)
	if len(fields) > 0 {
		params.Type = fields[0]
	}
	if len(fields) > 1 {
		params.BucketName = fields[1]
	}
	if len(fields) > 2 {
		bucketID := models.LooseString(fields[2])
		params.BucketID = &bucketID
	}
	return params
}
