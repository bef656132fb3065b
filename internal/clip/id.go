package clip

import "github.com/google/uuid"

// NewID generates a new unique clip identifier.
func NewID() string {
	return uuid.NewString()
}
