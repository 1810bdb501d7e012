// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"inquiry_portal_backend/platform/apperr"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format. Extra keys from
// apperr details are merged in by HandleError.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Message: message, Code: code})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses.
// A typed *apperr.Error anywhere in the chain selects the status code from its
// Kind, untyped errors become 500. The cause is only included when the
// ErrorDetails middleware enabled it.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status := http.StatusInternalServerError
	body := gin.H{"message": "Internal server error", "code": "internal"}

	if domainErr, ok := apperr.As(err); ok {
		status = domainErr.HTTPStatus()
		body["message"] = domainErr.Message
		if domainErr.Code != "" {
			body["code"] = domainErr.Code
		}
		if details, ok := domainErr.Details.(map[string]interface{}); ok {
			for key, value := range details {
				body[key] = value
			}
		}
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.CaptureException(err)
		}
		if c.GetBool(ContextErrorDetailsKey) {
			body["error"] = err.Error()
		}
	}

	c.JSON(status, body)
	return true
}
