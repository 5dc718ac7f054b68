package entity

import (
	"github.com/google/uuid"
)

// newID returns id unchanged when set, otherwise a fresh UUID.
func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
