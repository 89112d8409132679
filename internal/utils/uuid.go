package utils

import "github.com/google/uuid"

// UUIDGenerator issues job application ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, so ids sort by creation time. A random v4 is
// used if the v7 clock read fails.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
