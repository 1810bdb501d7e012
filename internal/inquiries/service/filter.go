package service

import (
	"strings"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"
	"inquiry_portal_backend/internal/inquiries/transport"

	"github.com/google/uuid"
)

// BuildFilter converts a list query into a domain filter. Unknown enum tokens
// and malformed creator ids produce a filter that matches nothing. Dates that
// do not parse are rejected.
func BuildFilter(q transport.ListQuery) (domain.ListFilter, error) {
	f := domain.ListFilter{
		Country: strings.TrimSpace(q.Country),
		State:   strings.TrimSpace(q.State),
		City:    strings.TrimSpace(q.City),
		Area:    strings.TrimSpace(q.Area),
		Search:  strings.TrimSpace(q.Search),
		Limit:   q.Limit,
		Offset:  q.Offset,
	}

	if q.CreatedBy != "" {
		id, err := uuid.Parse(q.CreatedBy)
		if err != nil {
			f.NoMatch = true
		} else {
			f.CreatedBy = &id
		}
	}

	f.JobType = filterEnum[domain.JobType](q.JobType, domain.FieldJobType, &f.NoMatch)
	f.PropertyType = filterEnum[domain.PropertyType](q.PropertyType, domain.FieldPropertyType, &f.NoMatch)
	f.BuildingType = filterEnum[domain.BuildingType](q.BuildingType, domain.FieldBuildingType, &f.NoMatch)
	f.InspectionPropertyType = filterEnum[domain.InspectionPropertyType](q.InspectionPropertyType, domain.FieldInspectionPropertyType, &f.NoMatch)
	f.BudgetRange = filterEnum[domain.BudgetRange](q.BudgetRange, domain.FieldBudgetRange, &f.NoMatch)
	f.ProjectUrgency = filterEnum[domain.ProjectUrgency](q.ProjectUrgency, domain.FieldProjectUrgency, &f.NoMatch)
	f.Status = filterEnum[domain.Status](q.Status, domain.FieldStatus, &f.NoMatch)

	var err error
	if f.CreatedFrom, err = filterDate(q.CreatedFrom, "createdFrom"); err != nil {
		return domain.ListFilter{}, err
	}
	if f.CreatedTo, err = filterDate(q.CreatedTo, "createdTo"); err != nil {
		return domain.ListFilter{}, err
	}
	return f, nil
}

func filterEnum[T ~string](value string, field domain.Field, noMatch *bool) *T {
	if value == "" {
		return nil
	}
	if !domain.IsMember(field, value) {
		*noMatch = true
		return nil
	}
	v := T(value)
	return &v
}

func filterDate(value, field string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t := domain.CoerceDate(value)
	if t == nil {
		return nil, domain.ErrInvalidFormat(field)
	}
	return t, nil
}
