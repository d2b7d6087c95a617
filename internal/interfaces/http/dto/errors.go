package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "CONCURRENCY_CONFLICT"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
)

// Editor pipeline error codes
const (
	// ErrCodeValidation is used when submitted form values fail schema validation
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeSubmitInFlight is used when a session already has a submit running
	ErrCodeSubmitInFlight = "SUBMIT_IN_FLIGHT"
	// ErrCodeUploadTooLarge is used when an uploaded file exceeds the size ceiling
	ErrCodeUploadTooLarge = "UPLOAD_TOO_LARGE"
	// ErrCodeUploadWrongType is used when an uploaded file has a disallowed content type
	ErrCodeUploadWrongType = "UPLOAD_WRONG_TYPE"
	// ErrCodeUploadCompressFailed is used when image compression fails
	ErrCodeUploadCompressFailed = "UPLOAD_COMPRESS_FAILED"
	// ErrCodeUploadFailed is used when object storage rejects the upload
	ErrCodeUploadFailed = "UPLOAD_FAILED"
	// ErrCodePersistence is used when the persistence gateway fails
	ErrCodePersistence = "PERSISTENCE_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Domain errors carry these codes directly; anything unmapped falls
// back to 500 via GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeUnauthorized:  http.StatusUnauthorized,
	ErrCodeForbidden:     http.StatusForbidden,
	ErrCodeRateLimited:   http.StatusTooManyRequests,

	ErrCodeValidation:           http.StatusBadRequest,
	ErrCodeSubmitInFlight:       http.StatusConflict,
	ErrCodeUploadTooLarge:       http.StatusRequestEntityTooLarge,
	ErrCodeUploadWrongType:      http.StatusBadRequest,
	ErrCodeUploadCompressFailed: http.StatusUnprocessableEntity,
	ErrCodeUploadFailed:         http.StatusBadGateway,
	ErrCodePersistence:          http.StatusBadGateway,

	// Invariant violations raised by catalog entities
	"INVALID_PRODUCT_NAME":     http.StatusBadRequest,
	"INVALID_PRODUCT_CATEGORY": http.StatusBadRequest,
	"INVALID_PRICE":            http.StatusBadRequest,
	"INVALID_PURCHASE_LINK":    http.StatusBadRequest,
	"INVALID_IMAGE":            http.StatusBadRequest,
	"INVALID_INPUT":            http.StatusBadRequest,
	"INVALID_STATE":            http.StatusUnprocessableEntity,

	// Site content
	"INVALID_STORE_LINK": http.StatusBadRequest,

	// Identity
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"USER_DISABLED":       http.StatusForbidden,
	"INVALID_USERNAME":    http.StatusBadRequest,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"REFRESH_EXHAUSTED":   http.StatusUnauthorized,

	// CSV import
	"IMPORT_REQUIRED_FIELD": http.StatusBadRequest,
	"IMPORT_INVALID_TYPE":   http.StatusBadRequest,
	"IMPORT_INVALID_FORMAT": http.StatusBadRequest,
	"IMPORT_MALFORMED_ROW":  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
