// Package service provides account provisioning for the users context.
package service

import (
	"context"
	"errors"
	"strings"

	"inquiry_portal_backend/internal/users/domain"
	"inquiry_portal_backend/internal/users/password"
	"inquiry_portal_backend/internal/users/repository"
	"inquiry_portal_backend/platform/apperr"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/validator"
)

// roleTag is the validator tag bound to the role set.
const roleTag = "userrole"

// Store is the persistence the service needs.
type Store interface {
	Create(ctx context.Context, u repository.NewUser) (domain.User, error)
}

// CreateUserInput is validated before any hashing happens.
type CreateUserInput struct {
	Name     string  `validate:"required,max=200"`
	Email    string  `validate:"required,email,max=320"`
	Password string  `validate:"required,min=8,max=72"`
	Mobile   *string `validate:"omitempty,max=32"`
	Role     string  `validate:"required,userrole"`
}

type Service struct {
	store Store
	val   *validator.Validator
	log   *logger.Logger
}

// New registers the role tag on val and returns the service.
func New(store Store, val *validator.Validator, log *logger.Logger) (*Service, error) {
	if err := val.RegisterMembership(roleTag, domain.IsValidRole); err != nil {
		return nil, err
	}
	return &Service{store: store, val: val, log: log}, nil
}

// CreateUser validates the input, hashes the password and stores the account.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = strings.ToUpper(strings.TrimSpace(in.Role))

	if err := s.val.Struct(in); err != nil {
		return domain.User{}, apperr.Validation("invalid user").
			WithCode("invalid_user").
			WithDetails(map[string]interface{}{"fields": validator.FieldErrors(err)})
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return domain.User{}, apperr.Wrap(apperr.KindInternal, "hash password", err)
	}

	user, err := s.store.Create(ctx, repository.NewUser{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Mobile:       in.Mobile,
		Role:         domain.Role(in.Role),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return domain.User{}, apperr.Conflict("email already registered").WithCode("duplicate_entry")
	}
	if err != nil {
		return domain.User{}, apperr.Wrap(apperr.KindInternal, "create user", err)
	}

	s.log.WithContext(ctx).Info("user created", "userId", user.ID, "role", user.Role)
	return user, nil
}
