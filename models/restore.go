package models

import "time"

// RestoreRequest describes a restore to trigger on the Clumio side.
type RestoreRequest struct {
	// Type is the asset family to restore. Required.
	Type InventoryType `json:"type"`

	// BucketName is the name of the bucket to restore. Optional.
	BucketName string `json:"bucket-name,omitempty"`

	// BucketID is the Clumio bucket identifier. Optional; when present it
	// must be a base-10 integer written as a string.
	BucketID string `json:"bucket-id,omitempty"`

	// HasBucketID reports that the caller supplied bucket-id at all, even
	// as an empty value.
	HasBucketID bool `json:"-"`
}

// RestoreStatus is the outcome recorded for a restore request.
type RestoreStatus string

const (
	RestoreSucceeded RestoreStatus = "succeeded"
	RestoreFailed    RestoreStatus = "failed"
)

// RestoreRecord is an audit entry for one restore request forwarded to
// Clumio.
type RestoreRecord struct {
	ID         int64         `json:"id"`
	TraceID    string        `json:"trace_id,omitempty"`
	Type       InventoryType `json:"type"`
	BucketName string        `json:"bucket_name,omitempty"`
	BucketID   string        `json:"bucket_id,omitempty"`
	Status     RestoreStatus `json:"status"`
	Error      string        `json:"error,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
