package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
)

// Client-facing messages for non-validation failures. Internal error text is
// never serialized.
const (
	MsgValidationFailed    = "validation failed"
	MsgDatabaseUnavailable = "database connection failed"
	MsgAlreadyRegistered   = "user already registered"
	MsgUnexpected          = "an unexpected error occurred"
)

// ErrorResponse is the JSON error body. Errors is present only for
// validation failures.
type ErrorResponse struct {
	Status int           `json:"-"`
	Error  string        `json:"error"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an ErrorResponse from a domain error.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Status: domainErrorToStatus(err),
		Error:  ErrorMessage(err),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// ErrorMessage returns the client-facing message for err.
func ErrorMessage(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Message != "" {
			return verr.Message
		}
		return MsgValidationFailed
	case errors.Is(err, domain.ErrValidation):
		return MsgValidationFailed
	case errors.Is(err, domain.ErrUnavailable):
		return MsgDatabaseUnavailable
	case errors.Is(err, domain.ErrConflict):
		return MsgAlreadyRegistered
	default:
		return MsgUnexpected
	}
}

// WriteErrorResponse writes the JSON error body for the given domain error
// with the matching HTTP status code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// StatusFor maps a domain error to its HTTP status code.
func StatusFor(err error) int {
	return domainErrorToStatus(err)
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
// ErrUnavailable falls through to 500.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	if len(fields) == 0 {
		return nil
	}
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Field:   field,
			Message: msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Field < details[j].Field
	})
	return details
}
