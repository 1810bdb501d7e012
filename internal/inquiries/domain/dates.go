package domain

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// maxEpochMillis bounds numeric dates to the range a JavaScript Date accepts.
const maxEpochMillis = 8.64e15

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// CoerceDate turns a loosely typed date into an instant. Accepted inputs are
// time values, RFC 3339 / ISO 8601 strings (a missing zone means UTC),
// date-only strings and epoch milliseconds. Anything else yields nil.
func CoerceDate(raw any) *time.Time {
	switch v := raw.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		t := v.UTC()
		return &t
	case *time.Time:
		if v == nil {
			return nil
		}
		return CoerceDate(*v)
	case string:
		return parseDateString(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return fromEpochMillis(f)
	case float64:
		return fromEpochMillis(v)
	case int64:
		return fromEpochMillis(float64(v))
	case int:
		return fromEpochMillis(float64(v))
	default:
		return nil
	}
}

func parseDateString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func fromEpochMillis(ms float64) *time.Time {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return nil
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}
