package adapters

import (
	"context"
	"fmt"

	inquiryports "inquiry_portal_backend/internal/inquiries/ports"

	"github.com/google/uuid"
)

// UserExistsReader is the narrow interface over the users repository.
type UserExistsReader interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// InquiryCreatorChecker adapts the users repository to the inquiries
// creator existence port.
type InquiryCreatorChecker struct {
	users UserExistsReader
}

// NewInquiryCreatorChecker creates a new creator checker adapter.
func NewInquiryCreatorChecker(users UserExistsReader) *InquiryCreatorChecker {
	return &InquiryCreatorChecker{users: users}
}

// UserExists reports whether id names a stored user.
func (a *InquiryCreatorChecker) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := a.users.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("look up inquiry creator: %w", err)
	}
	return exists, nil
}

var _ inquiryports.UserExistenceChecker = (*InquiryCreatorChecker)(nil)
