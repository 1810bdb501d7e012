package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestListFilterConjunction(t *testing.T) {
	a := Inquiry{ID: uuid.New(), City: strPtr("Dubai"), JobType: JobTypeElectrical}
	b := Inquiry{ID: uuid.New(), City: strPtr("Dubai"), JobType: JobTypePainting}
	c := Inquiry{ID: uuid.New(), City: strPtr("Abu Dhabi"), JobType: JobTypeElectrical}

	jt := JobTypeElectrical
	f := ListFilter{City: "Dubai", JobType: &jt}

	got := matching(f, a, b, c)
	if len(got) != 1 || got[0] != a.ID {
		t.Fatalf("expected only A, got %v", got)
	}
}

func TestListFilterSearchDisjunction(t *testing.T) {
	d := Inquiry{ID: uuid.New(), Area: "Marina"}
	e := Inquiry{ID: uuid.New(), Area: "Deira", SpecialRequirements: strPtr("needs Marina view")}
	other := Inquiry{ID: uuid.New(), Area: "Jumeirah", BuildingName: strPtr("Tower 9")}

	got := matching(ListFilter{Search: "marina"}, d, e, other)
	if len(got) != 2 {
		t.Fatalf("expected D and E, got %v", got)
	}
}

func TestListFilterSubstringIsCaseInsensitive(t *testing.T) {
	in := Inquiry{City: strPtr("Abu Dhabi"), Area: "Al Reem Island", Country: strPtr("United Arab Emirates")}

	for _, f := range []ListFilter{
		{City: "dhabi"},
		{Area: "REEM"},
		{Country: "arab"},
		{},
	} {
		if !f.Matches(in) {
			t.Errorf("expected %+v to match", f)
		}
	}
	if (ListFilter{State: "dubai"}).Matches(in) {
		t.Error("substring on a NULL column must not match")
	}
}

func TestListFilterOptionalEnumsAndDates(t *testing.T) {
	pt := PropertyCommercial
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	in := Inquiry{PropertyType: &pt, CreatedAt: created}

	residential := PropertyResidential
	if (ListFilter{PropertyType: &residential}).Matches(in) {
		t.Error("propertyType mismatch should not match")
	}
	urgent := UrgencyUrgent
	if (ListFilter{ProjectUrgency: &urgent}).Matches(in) {
		t.Error("filter on unset optional enum should not match")
	}

	from := created.Add(-time.Hour)
	to := created.Add(time.Hour)
	if !(ListFilter{CreatedFrom: &from, CreatedTo: &to}).Matches(in) {
		t.Error("record inside the window should match")
	}
	if (ListFilter{CreatedFrom: &to}).Matches(in) {
		t.Error("record before createdFrom should not match")
	}
	if (ListFilter{NoMatch: true}).Matches(in) {
		t.Error("NoMatch filters match nothing")
	}
}

func TestSortNewestFirstAndPage(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	items := []Inquiry{
		{ID: uuid.New(), CreatedAt: base},
		{ID: low, CreatedAt: base.Add(time.Hour)},
		{ID: high, CreatedAt: base.Add(time.Hour)},
	}
	SortNewestFirst(items, func(in Inquiry) Inquiry { return in })

	if items[0].ID != high || items[1].ID != low || !items[2].CreatedAt.Equal(base) {
		t.Fatalf("unexpected order: %v", []uuid.UUID{items[0].ID, items[1].ID, items[2].ID})
	}

	if got := Page(items, 1, 1); len(got) != 1 || got[0].ID != low {
		t.Fatalf("Page(1,1) = %v", got)
	}
	if got := Page(items, 5, 0); len(got) != 0 {
		t.Fatalf("Page past end = %v", got)
	}
}

func matching(f ListFilter, items ...Inquiry) []uuid.UUID {
	var out []uuid.UUID
	for _, in := range items {
		if f.Matches(in) {
			out = append(out, in.ID)
		}
	}
	return out
}
