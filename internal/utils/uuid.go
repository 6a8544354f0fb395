package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for runs and traces.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	newV7 := g.newV7
	if newV7 == nil {
		newV7 = uuid.NewV7
	}

	id, err := newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
