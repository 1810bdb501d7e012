package domain

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// ListFilter is a conjunction of optional constraints over inquiries. Within
// Search the text columns are OR-ed.
type ListFilter struct {
	CreatedBy              *uuid.UUID
	JobType                *JobType
	PropertyType           *PropertyType
	BuildingType           *BuildingType
	InspectionPropertyType *InspectionPropertyType
	BudgetRange            *BudgetRange
	ProjectUrgency         *ProjectUrgency
	Status                 *Status
	Country                string
	State                  string
	City                   string
	Area                   string
	Search                 string
	CreatedFrom            *time.Time
	CreatedTo              *time.Time
	Limit                  int
	Offset                 int

	// NoMatch is set when an input can never match (an unknown enum token or
	// a malformed creator id). Stores return an empty result without a query.
	NoMatch bool
}

// Matches evaluates the filter against one inquiry. Limit and Offset are
// not part of the predicate.
func (f ListFilter) Matches(in Inquiry) bool {
	if f.NoMatch {
		return false
	}
	if f.CreatedBy != nil && in.CreatedBy != *f.CreatedBy {
		return false
	}
	if f.JobType != nil && in.JobType != *f.JobType {
		return false
	}
	if f.BudgetRange != nil && in.BudgetRange != *f.BudgetRange {
		return false
	}
	if f.Status != nil && in.Status != *f.Status {
		return false
	}
	if !equalsOptional(f.PropertyType, in.PropertyType) ||
		!equalsOptional(f.BuildingType, in.BuildingType) ||
		!equalsOptional(f.InspectionPropertyType, in.InspectionPropertyType) ||
		!equalsOptional(f.ProjectUrgency, in.ProjectUrgency) {
		return false
	}
	if !containsFold(deref(in.Country), f.Country) ||
		!containsFold(deref(in.State), f.State) ||
		!containsFold(deref(in.City), f.City) ||
		!containsFold(in.Area, f.Area) {
		return false
	}
	if f.Search != "" {
		hit := containsFold(deref(in.City), f.Search) ||
			containsFold(in.Area, f.Search) ||
			containsFold(deref(in.BuildingName), f.Search) ||
			containsFold(deref(in.SpecialRequirements), f.Search)
		if !hit {
			return false
		}
	}
	if f.CreatedFrom != nil && in.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && in.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

// SortNewestFirst orders by CreatedAt descending, then ID descending.
func SortNewestFirst[T any](items []T, key func(T) Inquiry) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) > 0
	})
}

// Page applies offset and limit to an ordered slice.
func Page[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return items[:0]
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func equalsOptional[T comparable](want, got *T) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

// containsFold is ILIKE '%needle%' with Unicode case folding. An empty
// needle always matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	// A Caser is stateful and must not be shared between goroutines.
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
