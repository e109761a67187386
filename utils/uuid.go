package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used for client-side
// idempotency keys on bid submissions.
func GenerateID() string {
	return uuid.New().String()
}
