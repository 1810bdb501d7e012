package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCoerceDate(t *testing.T) {
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	valid := []any{
		"2025-03-10T00:00:00.000Z",
		"2025-03-10T04:00:00+04:00",
		"2025-03-10",
		"2025-03-10T00:00:00",
		json.Number("1741564800000"),
		float64(1741564800000),
		want,
		&want,
	}
	for _, in := range valid {
		got := CoerceDate(in)
		if got == nil || !got.Equal(want) {
			t.Errorf("CoerceDate(%#v) = %v, want %v", in, got, want)
		}
	}

	invalid := []any{
		nil,
		"",
		"not-a-date",
		"2025-02-30",
		"10/03/2025",
		json.Number("9e16"),
		true,
		map[string]any{"date": "2025-03-10"},
		time.Time{},
	}
	for _, in := range invalid {
		if got := CoerceDate(in); got != nil {
			t.Errorf("CoerceDate(%#v) = %v, want nil", in, got)
		}
	}
}

func TestCoerceDateReturnsUTC(t *testing.T) {
	got := CoerceDate("2025-03-10T08:30:00+04:00")
	if got == nil || got.Location() != time.UTC || got.Hour() != 4 {
		t.Fatalf("CoerceDate() = %v", got)
	}
}
