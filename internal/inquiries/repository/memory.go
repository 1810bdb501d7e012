package repository

import (
	"context"
	"sync"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Repository with the same filter, ordering and
// creator-join semantics as Repo. It also answers creator existence checks.
// Used by service and handler tests.
type MemoryStore struct {
	mu        sync.RWMutex
	inquiries map[uuid.UUID]domain.Inquiry
	users     map[uuid.UUID]domain.CreatorSummary

	// FailWith, when set, is returned by every operation.
	FailWith error
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		inquiries: make(map[uuid.UUID]domain.Inquiry),
		users:     make(map[uuid.UUID]domain.CreatorSummary),
	}
}

var _ Repository = (*MemoryStore)(nil)

// AddUser registers a creator.
func (m *MemoryStore) AddUser(u domain.CreatorSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

// RemoveUser drops a creator while keeping its inquiries.
func (m *MemoryStore) RemoveUser(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

// UserExists implements ports.UserExistenceChecker.
func (m *MemoryStore) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, ok := m.users[id]
	return ok, nil
}

// Count returns the number of stored inquiries.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.inquiries)
}

func (m *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (domain.InquiryWithCreator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return domain.InquiryWithCreator{}, domain.ErrStoreFailure("fetch inquiry", m.FailWith)
	}
	in, ok := m.inquiries[id]
	if !ok {
		return domain.InquiryWithCreator{}, domain.ErrNotFound()
	}
	return m.join(in), nil
}

func (m *MemoryStore) List(_ context.Context, f domain.ListFilter) ([]domain.InquiryWithCreator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return nil, domain.ErrStoreFailure("fetch inquiries", m.FailWith)
	}

	items := make([]domain.InquiryWithCreator, 0)
	for _, in := range m.inquiries {
		if f.Matches(in) {
			items = append(items, m.join(in))
		}
	}
	domain.SortNewestFirst(items, func(item domain.InquiryWithCreator) domain.Inquiry { return item.Inquiry })
	return domain.Page(items, f.Offset, f.Limit), nil
}

func (m *MemoryStore) CreateBatch(_ context.Context, items []domain.Inquiry) ([]domain.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, domain.ErrStoreFailure("create inquiry", m.FailWith)
	}

	for _, in := range items {
		if _, exists := m.inquiries[in.ID]; exists {
			return nil, domain.ErrDuplicateEntry(nil)
		}
		if _, ok := m.users[in.CreatedBy]; !ok {
			return nil, domain.ErrUnknownCreator()
		}
	}
	for _, in := range items {
		m.inquiries[in.ID] = in
	}
	return append([]domain.Inquiry(nil), items...), nil
}

func (m *MemoryStore) Update(_ context.Context, id uuid.UUID, patch domain.Patch, now time.Time) (domain.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return domain.Inquiry{}, domain.ErrStoreFailure("update inquiry", m.FailWith)
	}
	in, ok := m.inquiries[id]
	if !ok {
		return domain.Inquiry{}, domain.ErrNotFound()
	}
	updated := patch.Apply(in, now)
	m.inquiries[id] = updated
	return updated, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) (domain.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return domain.Inquiry{}, domain.ErrStoreFailure("delete inquiry", m.FailWith)
	}
	in, ok := m.inquiries[id]
	if !ok {
		return domain.Inquiry{}, domain.ErrNotFound()
	}
	delete(m.inquiries, id)
	return in, nil
}

func (m *MemoryStore) join(in domain.Inquiry) domain.InquiryWithCreator {
	out := domain.InquiryWithCreator{Inquiry: in}
	if u, ok := m.users[in.CreatedBy]; ok {
		creator := u
		out.Creator = &creator
	}
	return out
}
