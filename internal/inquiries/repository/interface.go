package repository

import (
	"context"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"

	"github.com/google/uuid"
)

// InquiryReader provides read-only access to inquiries joined with their creator.
type InquiryReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.InquiryWithCreator, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.InquiryWithCreator, error)
}

// InquiryWriter provides write operations. CreateBatch is all-or-nothing.
type InquiryWriter interface {
	CreateBatch(ctx context.Context, items []domain.Inquiry) ([]domain.Inquiry, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Patch, now time.Time) (domain.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.Inquiry, error)
}

// Repository combines all inquiry store operations.
type Repository interface {
	InquiryReader
	InquiryWriter
}
