package service

import (
	"context"
	"io"
	"testing"
	"time"

	"inquiry_portal_backend/internal/users/domain"
	"inquiry_portal_backend/internal/users/password"
	"inquiry_portal_backend/internal/users/repository"
	"inquiry_portal_backend/platform/apperr"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created []repository.NewUser
	err     error
}

func (f *fakeStore) Create(_ context.Context, u repository.NewUser) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	f.created = append(f.created, u)
	now := time.Now().UTC()
	return domain.User{ID: uuid.New(), Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash, Role: u.Role, CreatedAt: now, UpdatedAt: now}, nil
}

func newService(t *testing.T, store Store) *Service {
	t.Helper()
	svc, err := New(store, validator.New(), logger.NewWithWriter("test", io.Discard))
	require.NoError(t, err)
	return svc
}

func TestCreateUserHashesPasswordAndNormalizes(t *testing.T) {
	store := &fakeStore{}
	svc := newService(t, store)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:     "  Omar Rep ",
		Email:    " Omar@Example.com",
		Password: "correct-horse",
		Role:     "sales_rep",
	})
	require.NoError(t, err)

	assert.Equal(t, "Omar Rep", user.Name)
	assert.Equal(t, "omar@example.com", user.Email)
	assert.Equal(t, domain.RoleSalesRep, user.Role)
	require.Len(t, store.created, 1)
	assert.NoError(t, password.Compare(store.created[0].PasswordHash, "correct-horse"))
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	cases := map[string]CreateUserInput{
		"unknown role":   {Name: "A", Email: "a@example.com", Password: "long-enough", Role: "OWNER"},
		"bad email":      {Name: "A", Email: "not-an-email", Password: "long-enough", Role: "ADMIN"},
		"short password": {Name: "A", Email: "a@example.com", Password: "short", Role: "ADMIN"},
		"missing name":   {Email: "a@example.com", Password: "long-enough", Role: "ADMIN"},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{}
			_, err := newService(t, store).CreateUser(context.Background(), in)

			assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
			assert.Empty(t, store.created)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newService(t, &fakeStore{err: repository.ErrDuplicateEmail})

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "A", Email: "a@example.com", Password: "long-enough", Role: "ADMIN"})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, "duplicate_entry", apperr.GetCode(err))
}
