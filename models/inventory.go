package models

// InventoryRequest describes a single inventory lookup.
type InventoryRequest struct {
	// Type is the asset family to list. Required.
	Type InventoryType `json:"type"`

	// AccountNativeID is the AWS account the S3 inventory is filtered by.
	// When empty the configured default account is used. Ignored for EC2.
	AccountNativeID string `json:"account-native-id,omitempty"`
}

// S3Asset is the reduced view of an upstream S3 asset that is reported back
// to chat users.
type S3Asset struct {
	BucketID   string `json:"bucket-id"`
	BucketName string `json:"bucket-name"`
}

// S3AssetsPage mirrors the HAL envelope returned by the Clumio
// protection-groups S3 assets endpoint. Only the fields the bot reads are
// declared.
type S3AssetsPage struct {
	Embedded struct {
		Items []UpstreamS3Asset `json:"items"`
	} `json:"_embedded"`
}

// UpstreamS3Asset is a single item of [S3AssetsPage]. Missing fields decode
// as empty strings.
type UpstreamS3Asset struct {
	BucketID   LooseString `json:"bucket_id"`
	BucketName string      `json:"bucket_name"`
}
