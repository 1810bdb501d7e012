// Package repository persists users in Postgres.
package repository

import (
	"context"
	"errors"

	"inquiry_portal_backend/internal/users/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

const uniqueViolation = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// NewUser carries the columns supplied on insert.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Mobile       *string
	Role         domain.Role
}

func (r *Repository) Create(ctx context.Context, u NewUser) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password, mobile, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password, mobile, role::text, created_at, updated_at
	`, u.Name, u.Email, u.PasswordHash, u.Mobile, string(u.Role))

	user, err := scanUser(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.User{}, ErrDuplicateEmail
	}
	return user, err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, mobile, role::text, created_at, updated_at
		FROM users WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, mobile, role::text, created_at, updated_at
		FROM users WHERE email = $1
	`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

// Exists reports whether a user with id is present.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Mobile,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}
	user.Role = domain.Role(role)
	return user, nil
}
