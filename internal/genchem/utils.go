package genchem

import "github.com/google/uuid"

// NewRandomID returns a random UUID v4 string.
func NewRandomID() string {
	return uuid.NewString()
}
