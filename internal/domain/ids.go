package domain

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier
func NewID() string {
	return uuid.New().String()
}
