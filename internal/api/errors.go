package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/generation"
)

// Error codes returned in the error envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidContentType = "INVALID_CONTENT_TYPE"
	CodeRequestTooLarge    = "REQUEST_TOO_LARGE"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeGenerationTimeout  = "GENERATION_TIMEOUT"
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeHealthCheckFailed  = "HEALTH_CHECK_FAILED"
	CodeAPIInfoFailed      = "API_INFO_FAILED"
)

// MapGenerationError maps a technique failure to an HTTP status and error
// code. Failures that aren't classified fall through to 500 with the
// technique's own failure code.
func MapGenerationError(err error, fallbackCode string) (int, string) {
	switch {
	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests, CodeRateLimitExceeded
	case errors.Is(err, generation.ErrTimeout):
		return http.StatusGatewayTimeout, CodeGenerationTimeout
	default:
		return http.StatusInternalServerError, fallbackCode
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for a
// technique failure. Raw upstream errors never reach the client.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, generation.ErrRateLimited):
		return "Rate limit exceeded. Please wait before making another request."
	case errors.Is(err, generation.ErrTimeout):
		return "The request timed out. Please try a simpler query or try again later."
	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by content safety filters."
	case errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned an unusable response."
	default:
		return "An unexpected error occurred while processing the request."
	}
}

// ValidationDetails converts validator errors into a per-field message map
// suitable for the error envelope's details.
func ValidationDetails(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["request"] = "validation failed"
		return details
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required":
			details[field] = "is required"
		case "min":
			details[field] = "must be at least " + fieldErr.Param() + " characters long"
		case "max":
			details[field] = "must be at most " + fieldErr.Param() + " characters long"
		case "gte":
			details[field] = "must be at least " + fieldErr.Param()
		case "lte":
			details[field] = "must be at most " + fieldErr.Param()
		default:
			details[field] = "is invalid"
		}
	}

	return details
}

// respondDecodeError maps request decode failures to the documented
// precondition error codes.
func respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrUnsupportedContentType):
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeInvalidContentType, shared.ErrUnsupportedContentType.Error(), nil)
	case errors.Is(err, shared.ErrRequestTooLarge):
		shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge,
			CodeRequestTooLarge, "Request too large. Maximum size is 1MB.", nil)
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeBadRequest, "Invalid request data", nil)
	}
}
