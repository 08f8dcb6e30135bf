package workout

import "github.com/google/uuid"

// GenerateID returns a random id in the canonical UUID v4 layout,
// e.g. 0b7c6f8e-3f2a-4d7b-9c1e-5a6b7c8d9e0f.
func GenerateID() string {
	return uuid.NewString()
}
