package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	draftservice "github.com/dshowevents/contratia/internal/draft/service"
	"github.com/dshowevents/contratia/internal/suggest"
	"github.com/dshowevents/contratia/internal/workflow"
)

// APIError is the wire shape for every failure response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

var (
	ErrNotFound    = &APIError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrRateLimited = &APIError{Status: http.StatusTooManyRequests, Code: "rate_limited", Message: "too many requests, try again later"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request body"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Code: code, Field: field, Message: message}
}

// AbortWithError translates service errors into API responses. Unknown
// errors become opaque 502/500s; their detail stays in the logs.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	switch {
	case errors.Is(err, draftservice.ErrNotFound):
		apiErr = ErrNotFound
	case errors.Is(err, suggest.ErrEmptyPrompt):
		apiErr = newValidationError("prompt", "required", "prompt is required")
	case errors.Is(err, suggest.ErrPromptTooLong):
		apiErr = newValidationError("prompt", "too_long", "prompt must be at most 2000 characters")
	case errors.Is(err, suggest.ErrUnavailable):
		apiErr = &APIError{Status: http.StatusBadGateway, Code: "suggestion_unavailable", Message: "could not generate a suggestion, try again later"}
	case errors.Is(err, workflow.ErrWebhookNotConfigured):
		apiErr = &APIError{Status: http.StatusServiceUnavailable, Code: "webhook_not_configured", Message: "document workflow is not configured for this service"}
	default:
		apiErr = &APIError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal error"}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}
