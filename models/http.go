package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RequestParams is the union of every parameter the bot accepts on
// /inventory and /restore, regardless of whether it arrived as a query
// string, a JSON body or a Slack form post.
type RequestParams struct {
	Type            string       `json:"type"`
	BucketName      string       `json:"bucket-name"`
	BucketID        *LooseString `json:"bucket-id"`
	AccountNativeID string       `json:"account-native-id"`
}

// InventoryRequest converts the params into an [InventoryRequest].
func (p RequestParams) InventoryRequest() InventoryRequest {
	return InventoryRequest{
		Type:            InventoryType(p.Type),
		AccountNativeID: p.AccountNativeID,
	}
}

// RestoreRequest converts the params into a [RestoreRequest].
func (p RequestParams) RestoreRequest() RestoreRequest {
	req := RestoreRequest{
		Type:       InventoryType(p.Type),
		BucketName: p.BucketName,
	}
	if p.BucketID != nil {
		req.BucketID = string(*p.BucketID)
		req.HasBucketID = true
	}
	return req
}

// LooseString is a string that may be written in JSON either as a string or
// as a bare number. Chat integrations are inconsistent about quoting IDs.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*s = LooseString(num.String())
	return nil
}
