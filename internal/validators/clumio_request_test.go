// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/clumio-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewClumioRequestValidator(t *testing.T) {
	v := NewClumioRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewClumioRequestValidator()
	ctx := context.Background()

	inventory := models.InventoryRequest{Type: models.S3}
	restore := models.RestoreRequest{Type: models.EC2}

	assert.NoError(t, v.Validate(ctx, inventory))
	assert.NoError(t, v.Validate(ctx, &inventory))
	assert.NoError(t, v.Validate(ctx, restore))
	assert.NoError(t, v.Validate(ctx, &restore))
	assert.ErrorIs(t, v.Validate(ctx, "s3"), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewClumioRequestValidator()

	err := v.Validate(context.Background(), models.InventoryRequest{Type: models.S3}, "bucket-name")

	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Inventory requests
// ---------------------------------------------------------------------------

func TestValidate_InventoryRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.InventoryRequest
		wantErr error
		wantMsg string
	}{
		{name: "s3", req: models.InventoryRequest{Type: models.S3}},
		{name: "ec2", req: models.InventoryRequest{Type: models.EC2}},
		{name: "s3 with account", req: models.InventoryRequest{Type: models.S3, AccountNativeID: "123456789012"}},
		{
			name:    "missing type",
			req:     models.InventoryRequest{},
			wantErr: ErrMissingType,
			wantMsg: "Missing required parameter: type",
		},
		{
			name:    "unknown type",
			req:     models.InventoryRequest{Type: "rds"},
			wantErr: ErrInvalidType,
			wantMsg: "Invalid type value: rds. Accepted values: s3, ec2",
		},
		{
			name:    "type is case sensitive",
			req:     models.InventoryRequest{Type: "S3"},
			wantErr: ErrInvalidType,
			wantMsg: "Invalid type value: S3. Accepted values: s3, ec2",
		},
		{
			name:    "short account",
			req:     models.InventoryRequest{Type: models.S3, AccountNativeID: "12345"},
			wantErr: ErrInvalidAccountNativeID,
			wantMsg: "account-native-id must be a 12-digit AWS account ID",
		},
	}

	v := NewClumioRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())

			var reqErr *RequestError
			assert.True(t, errors.As(err, &reqErr))
		})
	}
}

// ---------------------------------------------------------------------------
// Restore requests
// ---------------------------------------------------------------------------

func TestValidate_RestoreRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RestoreRequest
		wantErr error
	}{
		{name: "type only", req: models.RestoreRequest{Type: models.S3}},
		{name: "name and id", req: models.RestoreRequest{Type: models.S3, BucketName: "logs", BucketID: "42"}},
		{name: "signed id", req: models.RestoreRequest{Type: models.S3, BucketID: "-42"}},
		{name: "padded id", req: models.RestoreRequest{Type: models.EC2, BucketID: " 42 "}},
		{name: "leading zeros", req: models.RestoreRequest{Type: models.EC2, BucketID: "007"}},
		{name: "missing type", req: models.RestoreRequest{BucketID: "1"}, wantErr: ErrMissingType},
		{name: "invalid type", req: models.RestoreRequest{Type: "gcs"}, wantErr: ErrInvalidType},
		{name: "alpha id", req: models.RestoreRequest{Type: models.S3, BucketID: "abc"}, wantErr: ErrInvalidBucketID},
		{name: "decimal id", req: models.RestoreRequest{Type: models.S3, BucketID: "1.5"}, wantErr: ErrInvalidBucketID},
		{name: "supplied id", req: models.RestoreRequest{Type: models.S3, BucketID: "42", HasBucketID: true}},
		{name: "supplied empty id", req: models.RestoreRequest{Type: models.S3, HasBucketID: true}, wantErr: ErrInvalidBucketID},
		{name: "supplied blank id", req: models.RestoreRequest{Type: models.S3, BucketID: "  ", HasBucketID: true}, wantErr: ErrInvalidBucketID},
	}

	v := NewClumioRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RestoreRequest_BucketIDMessage(t *testing.T) {
	v := NewClumioRequestValidator()

	err := v.Validate(context.Background(), models.RestoreRequest{Type: models.S3, BucketID: "x1"})

	require.Error(t, err)
	assert.Equal(t, "bucket-id must be a numeric value (string format)", err.Error())
}

func TestValidate_RestoreRequest_FieldScoping(t *testing.T) {
	v := NewClumioRequestValidator()

	// bucket-id is not checked when only type is requested
	err := v.Validate(context.Background(), models.RestoreRequest{Type: models.S3, BucketID: "abc"}, FieldType)

	assert.NoError(t, err)
}

func TestValidate_MissingTypeCheckedFirst(t *testing.T) {
	v := NewClumioRequestValidator()

	err := v.Validate(context.Background(), models.RestoreRequest{BucketID: "abc"})

	assert.ErrorIs(t, err, ErrMissingType)
}
