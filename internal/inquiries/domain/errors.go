package domain

import (
	"fmt"
	"strings"

	"inquiry_portal_backend/platform/apperr"
)

// Stable machine-readable error codes returned in the response body.
const (
	CodeMissingFields        = "missing_fields"
	CodeUnknownCreator       = "unknown_creator"
	CodeInvalidFormat        = "invalid_format"
	CodeMissingID            = "missing_id"
	CodeNotFound             = "not_found"
	CodeDuplicateEntry       = "duplicate_entry"
	CodeStoreFailure         = "store_failure"
	CodeMalformedRequestBody = "malformed_request_body"
)

const (
	msgNotFound       = "Inquiry not found"
	msgUnknownCreator = "User not found"
	msgMissingID      = "Missing ID parameter"
	msgDuplicate      = "Duplicate entry found"
	msgMalformedBody  = "Invalid JSON in request body"
)

// ErrMissingFields reports required fields that were absent or empty.
func ErrMissingFields(fields []string) *apperr.Error {
	return apperr.Validation("Missing required fields: " + strings.Join(fields, ", ")).
		WithCode(CodeMissingFields).
		WithDetails(map[string]interface{}{"missingFields": fields})
}

// ErrUnknownCreator reports a createdBy that does not resolve to a user.
func ErrUnknownCreator() *apperr.Error {
	return apperr.Validation(msgUnknownCreator).WithCode(CodeUnknownCreator)
}

// ErrInvalidFormat reports a field whose value has the wrong shape.
func ErrInvalidFormat(field string) *apperr.Error {
	msg := fmt.Sprintf("Invalid value for %s", field)
	if field == "email" {
		msg = "Invalid email format"
	}
	return apperr.Validation(msg).
		WithCode(CodeInvalidFormat).
		WithDetails(map[string]interface{}{"field": field})
}

// ErrMissingID reports an update or delete without an id.
func ErrMissingID() *apperr.Error {
	return apperr.BadRequest(msgMissingID).WithCode(CodeMissingID)
}

// ErrNotFound reports an id that matches no inquiry.
func ErrNotFound() *apperr.Error {
	return apperr.NotFound(msgNotFound).WithCode(CodeNotFound)
}

// ErrDuplicateEntry wraps a uniqueness violation from the store.
func ErrDuplicateEntry(err error) *apperr.Error {
	return apperr.Wrap(apperr.KindConflict, msgDuplicate, err).WithCode(CodeDuplicateEntry)
}

// ErrStoreFailure wraps any other persistence failure.
func ErrStoreFailure(op string, err error) *apperr.Error {
	return apperr.Wrap(apperr.KindInternal, "Failed to "+op, err).WithCode(CodeStoreFailure)
}

// ErrMalformedBody reports a request body that could not be decoded.
func ErrMalformedBody(err error) *apperr.Error {
	return apperr.Wrap(apperr.KindBadRequest, msgMalformedBody, err).WithCode(CodeMalformedRequestBody)
}
