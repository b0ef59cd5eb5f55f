package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique identifiers for users and
// embedded entries.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 (time-ordered) UUID string, falling back to v4 if
// the system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
