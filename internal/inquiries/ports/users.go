// Package ports defines consumer-driven interfaces for external dependencies.
// These interfaces are defined in the inquiries domain based on what it needs,
// rather than what other domains choose to offer.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// UserExistenceChecker verifies that a creator exists without exposing user
// data to the inquiries domain.
type UserExistenceChecker interface {
	// UserExists returns true if a user with the given ID exists.
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}
