package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Validation("x"), http.StatusBadRequest},
		{BadRequest("x"), http.StatusBadRequest},
		{Conflict("x"), http.StatusConflict},
		{Forbidden("x"), http.StatusForbidden},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Internal("x"), http.StatusInternalServerError},
		{New(KindUnknown, "x"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Errorf("kind %d: HTTPStatus() = %d, want %d", tc.err.Kind, got, tc.want)
		}
	}
}

func TestKindAndCodeSurviveWrapping(t *testing.T) {
	base := Conflict("Duplicate entry found").WithCode("duplicate_entry")
	wrapped := fmt.Errorf("create inquiry: %w", base)

	if !Is(wrapped, KindConflict) {
		t.Fatal("expected wrapped error to keep its kind")
	}
	if got := GetCode(wrapped); got != "duplicate_entry" {
		t.Fatalf("GetCode() = %q, want duplicate_entry", got)
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected plain errors to report KindUnknown")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "store failure", cause).WithOp("inquiries.List")

	if got := err.Error(); got != "inquiries.List: store failure: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
}
