package services

import "github.com/google/uuid"

// newID returns a fresh server-assigned identifier.
func newID() string {
	return uuid.New().String()
}
