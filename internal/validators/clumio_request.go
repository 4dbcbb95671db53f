package validators

import (
	"context"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/clumio-bot/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldType targets the inventory type ("s3" or "ec2").
	FieldType = "type"

	// FieldBucketID targets the optional numeric bucket identifier of a restore.
	FieldBucketID = "bucket-id"

	// FieldAccountNativeID targets the optional AWS account filter of an inventory lookup.
	FieldAccountNativeID = "account-native-id"
)

var (
	// bucket IDs are base-10 integers, optionally signed and padded with spaces
	numericPattern = regexp.MustCompile(`^\s*[+-]?[0-9]+\s*$`)

	awsAccountIDPattern = regexp.MustCompile(`^[0-9]{12}$`)
)

// ClumioRequestValidator validates inventory and restore requests before they
// are forwarded upstream.
type ClumioRequestValidator struct {
}

func NewClumioRequestValidator() Validator {
	return &ClumioRequestValidator{}
}

func (v *ClumioRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InventoryRequest:
		return v.validateInventoryRequest(ctx, value, fields...)
	case *models.InventoryRequest:
		return v.validateInventoryRequest(ctx, *value, fields...)

	case models.RestoreRequest:
		return v.validateRestoreRequest(ctx, value, fields...)
	case *models.RestoreRequest:
		return v.validateRestoreRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClumioRequestValidator) validateInventoryRequest(ctx context.Context, req models.InventoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldAccountNativeID}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if err := validateType(req.Type); err != nil {
				return err
			}
		case FieldAccountNativeID:
			err := validation.Validate(req.AccountNativeID, validation.Match(awsAccountIDPattern))
			if err != nil {
				return newRequestError(ErrInvalidAccountNativeID,
					"account-native-id must be a 12-digit AWS account ID")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClumioRequestValidator) validateRestoreRequest(ctx context.Context, req models.RestoreRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldBucketID}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if err := validateType(req.Type); err != nil {
				return err
			}
		case FieldBucketID:
			// Match lets empty values through; a supplied but blank id is still invalid
			if req.HasBucketID && strings.TrimSpace(req.BucketID) == "" {
				return newRequestError(ErrInvalidBucketID,
					"bucket-id must be a numeric value (string format)")
			}
			if err := validation.Validate(req.BucketID, validation.Match(numericPattern)); err != nil {
				return newRequestError(ErrInvalidBucketID,
					"bucket-id must be a numeric value (string format)")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateType(t models.InventoryType) error {
	value := string(t)

	if err := validation.Validate(value, validation.Required); err != nil {
		return newRequestError(ErrMissingType, "Missing required parameter: type")
	}

	if err := validation.Validate(value, validation.In(allowedTypeValues()...)); err != nil {
		return newRequestError(ErrInvalidType, "Invalid type value: %s. Accepted values: %s",
			value, strings.Join(allowedTypeNames(), ", "))
	}

	return nil
}

func allowedTypeValues() []any {
	values := make([]any, 0, len(models.AllowedInventoryTypes))
	for _, t := range models.AllowedInventoryTypes {
		values = append(values, string(t))
	}
	return values
}

func allowedTypeNames() []string {
	names := make([]string, 0, len(models.AllowedInventoryTypes))
	for _, t := range models.AllowedInventoryTypes {
		names = append(names, t.String())
	}
	return names
}
