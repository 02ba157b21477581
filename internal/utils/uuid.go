package utils

import "github.com/google/uuid"

// UUIDGenerator issues trace ids. UUIDv7 sorts by issue time, so request
// logs of the server and the client line up when merged.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate falls back to a random UUIDv4 when the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
