package models

// InventoryType selects which family of Clumio assets an inventory or
// restore request targets.
type InventoryType string

const (
	// S3 targets S3 buckets protected through Clumio protection groups.
	S3 InventoryType = "s3"

	// EC2 targets EC2 instances protected by Clumio.
	EC2 InventoryType = "ec2"
)

// AllowedInventoryTypes is the exhaustive list of accepted InventoryType
// values, in the order they are reported to callers.
var AllowedInventoryTypes = []InventoryType{S3, EC2}

// String implements fmt.Stringer.
func (t InventoryType) String() string {
	return string(t)
}

// IsValid reports whether t is one of AllowedInventoryTypes.
func (t InventoryType) IsValid() bool {
	for _, allowed := range AllowedInventoryTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
