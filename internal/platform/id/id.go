package id

import "github.com/google/uuid"

// Generator creates opaque identifiers, used for request correlation.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
