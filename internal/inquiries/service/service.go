// Package service provides business logic for inquiries.
package service

import (
	"context"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"
	"inquiry_portal_backend/internal/inquiries/ports"
	"inquiry_portal_backend/internal/inquiries/repository"
	"inquiry_portal_backend/internal/inquiries/transport"
	"inquiry_portal_backend/platform/apperr"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/metrics"
	"inquiry_portal_backend/platform/phone"

	"github.com/google/uuid"
)

const msgUpdated = "Inquiry updated successfully"

// Service provides business logic for inquiries. It holds no per-request
// state; every call is an independent unit of work against the repository.
type Service struct {
	repo    repository.Repository
	users   ports.UserExistenceChecker
	phone   *phone.Normalizer
	log     *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMetrics records operation outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates a new inquiries service.
func New(repo repository.Repository, users ports.UserExistenceChecker, normalizer *phone.Normalizer, log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		users: users,
		phone: normalizer,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates every payload and checks every creator before storing
// anything, then inserts the whole batch atomically.
func (s *Service) Create(ctx context.Context, caller httpkit.Identity, payloads []transport.InquiryPayload) (result []transport.InquiryResponse, err error) {
	defer func() { s.metrics.ObserveInquiry("create", err) }()

	now := s.timestamp()
	items := make([]domain.Inquiry, 0, len(payloads))
	for _, p := range payloads {
		in, err := s.NormalizeCreate(p, caller, now)
		if err != nil {
			return nil, err
		}
		items = append(items, in)
	}

	if err := s.ensureCreators(ctx, items); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateBatch(ctx, items)
	if err != nil {
		return nil, err
	}

	log := s.log.WithContext(ctx)
	for _, in := range created {
		log.Info("inquiry created", "inquiryId", in.ID, "createdBy", in.CreatedBy, "jobType", in.JobType)
	}
	return transport.ToResponses(created), nil
}

// GetByID returns one inquiry with its creator. An id that is not a valid
// uuid matches nothing.
func (s *Service) GetByID(ctx context.Context, rawID string) (result transport.InquiryResponse, err error) {
	defer func() { s.metrics.ObserveInquiry("get", err) }()

	id, err := uuid.Parse(rawID)
	if err != nil {
		return transport.InquiryResponse{}, domain.ErrNotFound()
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.InquiryResponse{}, err
	}
	return transport.ToJoinedResponse(item), nil
}

// List returns the inquiries matching every supplied filter, newest first.
func (s *Service) List(ctx context.Context, q transport.ListQuery) (result []transport.InquiryResponse, err error) {
	defer func() { s.metrics.ObserveInquiry("list", err) }()

	filter, err := BuildFilter(q)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return transport.ToJoinedResponses(items), nil
}

// Update applies a partial update. The target must exist; createdBy and
// createdAt are never changed.
func (s *Service) Update(ctx context.Context, caller httpkit.Identity, rawID string, p transport.InquiryPayload) (result transport.UpdateResponse, err error) {
	defer func() { s.metrics.ObserveInquiry("update", err) }()

	if rawID == "" {
		return transport.UpdateResponse{}, domain.ErrMissingID()
	}

	patch, err := s.NormalizeUpdate(p)
	if err != nil {
		return transport.UpdateResponse{}, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return transport.UpdateResponse{}, domain.ErrNotFound()
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.UpdateResponse{}, err
	}

	updated, err := s.repo.Update(ctx, id, patch, s.timestamp())
	if err != nil {
		return transport.UpdateResponse{}, err
	}

	log := s.log.WithContext(ctx)
	if updated.Status != existing.Status && !domain.IsUsualTransition(existing.Status, updated.Status) {
		log.Debug("unusual status transition", "inquiryId", id, "from", existing.Status, "to", updated.Status)
	}
	log.Info("inquiry updated", "inquiryId", id, "by", callerID(caller))

	return transport.UpdateResponse{Message: msgUpdated, Data: transport.ToResponse(updated)}, nil
}

// Delete removes an inquiry and returns it.
func (s *Service) Delete(ctx context.Context, caller httpkit.Identity, rawID string) (result transport.InquiryResponse, err error) {
	defer func() { s.metrics.ObserveInquiry("delete", err) }()

	if rawID == "" {
		return transport.InquiryResponse{}, domain.ErrMissingID()
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return transport.InquiryResponse{}, domain.ErrNotFound()
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return transport.InquiryResponse{}, err
	}

	s.log.WithContext(ctx).Info("inquiry deleted", "inquiryId", id, "by", callerID(caller))
	return transport.ToResponse(deleted), nil
}

// Options returns the enumeration registry for form option lists.
func (s *Service) Options() transport.OptionsResponse {
	return transport.OptionsResponse{Fields: domain.Options()}
}

func (s *Service) ensureCreators(ctx context.Context, items []domain.Inquiry) error {
	checked := make(map[uuid.UUID]bool, len(items))
	for _, in := range items {
		if checked[in.CreatedBy] {
			continue
		}
		exists, err := s.users.UserExists(ctx, in.CreatedBy)
		if err != nil {
			if _, typed := apperr.As(err); typed {
				return err
			}
			return domain.ErrStoreFailure("verify creator", err)
		}
		if !exists {
			return domain.ErrUnknownCreator()
		}
		checked[in.CreatedBy] = true
	}
	return nil
}

// timestamp truncates to microseconds, the precision Postgres stores, so the
// returned record equals what a later read yields.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func callerID(caller httpkit.Identity) string {
	if caller == nil || !caller.IsAuthenticated() {
		return ""
	}
	return caller.UserID().String()
}
