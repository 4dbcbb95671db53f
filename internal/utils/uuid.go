package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers. Version 7 UUIDs sort by
// creation time, which keeps audit records and log lines in order.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, or a random UUIDv4 if the clock-based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
