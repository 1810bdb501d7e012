package repository

import (
	"context"
	"errors"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repo is the Postgres-backed inquiry store.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inquiries repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository
var _ Repository = (*Repo)(nil)

// GetByID returns one inquiry joined with its creator.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.InquiryWithCreator, error) {
	row := r.pool.QueryRow(ctx, joinedSelect+"\n\tWHERE i.id = $1", id)
	item, err := scanJoined(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.InquiryWithCreator{}, domain.ErrNotFound()
	}
	if err != nil {
		return domain.InquiryWithCreator{}, domain.ErrStoreFailure("fetch inquiry", err)
	}
	return item, nil
}

// List returns the inquiries matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.InquiryWithCreator, error) {
	if f.NoMatch {
		return []domain.InquiryWithCreator{}, nil
	}

	query, args := buildListQuery(f)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.ErrStoreFailure("fetch inquiries", err)
	}
	defer rows.Close()

	items := make([]domain.InquiryWithCreator, 0)
	for rows.Next() {
		item, err := scanJoined(rows)
		if err != nil {
			return nil, domain.ErrStoreFailure("fetch inquiries", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreFailure("fetch inquiries", err)
	}
	return items, nil
}

// CreateBatch inserts every item in one transaction.
func (r *Repo) CreateBatch(ctx context.Context, items []domain.Inquiry) ([]domain.Inquiry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrStoreFailure("create inquiry", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, in := range items {
		batch.Queue(insertInquiry,
			in.ID, in.CreatedBy, in.Name, in.Email, in.ContactNumber, string(in.JobType),
			in.Country, in.State, in.City, in.Area,
			enumArg(in.PropertyType), enumArg(in.BuildingType), in.BuildingName,
			in.MapLocation, enumArg(in.InspectionPropertyType), string(in.BudgetRange), enumArg(in.ProjectUrgency),
			in.SpecialRequirements, in.PreferredInspectionDate, in.AlternativeInspectionDate,
			string(in.Status), in.CreatedAt, in.UpdatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	created := make([]domain.Inquiry, 0, len(items))
	for range items {
		in, err := scanInquiry(results.QueryRow())
		if err != nil {
			_ = results.Close()
			return nil, mapWriteError("create inquiry", err)
		}
		created = append(created, in)
	}
	if err := results.Close(); err != nil {
		return nil, mapWriteError("create inquiry", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapWriteError("create inquiry", err)
	}
	return created, nil
}

// Update applies patch to the row with id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.Patch, now time.Time) (domain.Inquiry, error) {
	query, args := buildUpdate(id, patch, now)
	in, err := scanInquiry(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Inquiry{}, domain.ErrNotFound()
	}
	if err != nil {
		return domain.Inquiry{}, mapWriteError("update inquiry", err)
	}
	return in, nil
}

// Delete removes the row with id and returns it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (domain.Inquiry, error) {
	in, err := scanInquiry(r.pool.QueryRow(ctx,
		"DELETE FROM inquiries WHERE id = $1 RETURNING "+returningColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Inquiry{}, domain.ErrNotFound()
	}
	if err != nil {
		return domain.Inquiry{}, domain.ErrStoreFailure("delete inquiry", err)
	}
	return in, nil
}

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrDuplicateEntry(err)
		case pgForeignKeyViolation:
			return domain.ErrUnknownCreator()
		}
	}
	return domain.ErrStoreFailure(op, err)
}

func enumArg[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

type inquiryRow struct {
	in                     domain.Inquiry
	jobType                string
	propertyType           *string
	buildingType           *string
	inspectionPropertyType *string
	budgetRange            string
	projectUrgency         *string
	status                 string
}

func (row *inquiryRow) dest() []interface{} {
	in := &row.in
	return []interface{}{
		&in.ID, &in.CreatedBy, &in.Name, &in.Email, &in.ContactNumber, &row.jobType,
		&in.Country, &in.State, &in.City, &in.Area, &row.propertyType, &row.buildingType, &in.BuildingName,
		&in.MapLocation, &row.inspectionPropertyType, &row.budgetRange, &row.projectUrgency,
		&in.SpecialRequirements, &in.PreferredInspectionDate, &in.AlternativeInspectionDate,
		&row.status, &in.CreatedAt, &in.UpdatedAt,
	}
}

func (row *inquiryRow) inquiry() domain.Inquiry {
	in := row.in
	in.JobType = domain.JobType(row.jobType)
	in.PropertyType = enumValue[domain.PropertyType](row.propertyType)
	in.BuildingType = enumValue[domain.BuildingType](row.buildingType)
	in.InspectionPropertyType = enumValue[domain.InspectionPropertyType](row.inspectionPropertyType)
	in.BudgetRange = domain.BudgetRange(row.budgetRange)
	in.ProjectUrgency = enumValue[domain.ProjectUrgency](row.projectUrgency)
	in.Status = domain.Status(row.status)
	return in
}

func enumValue[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func scanInquiry(row pgx.Row) (domain.Inquiry, error) {
	var r inquiryRow
	if err := row.Scan(r.dest()...); err != nil {
		return domain.Inquiry{}, err
	}
	return r.inquiry(), nil
}

func scanJoined(row pgx.Row) (domain.InquiryWithCreator, error) {
	var (
		r            inquiryRow
		creatorID    *uuid.UUID
		creatorName  *string
		creatorEmail *string
		creatorRole  *string
	)
	dest := append(r.dest(), &creatorID, &creatorName, &creatorEmail, &creatorRole)
	if err := row.Scan(dest...); err != nil {
		return domain.InquiryWithCreator{}, err
	}

	out := domain.InquiryWithCreator{Inquiry: r.inquiry()}
	if creatorID != nil {
		out.Creator = &domain.CreatorSummary{
			ID:    *creatorID,
			Name:  deref(creatorName),
			Email: deref(creatorEmail),
			Role:  deref(creatorRole),
		}
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
