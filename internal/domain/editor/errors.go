package editor

import (
	"fmt"
	"sort"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Error codes produced by the editor pipeline. Each failure class is
// distinguishable so callers can present targeted messages.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeSubmitInFlight     = "SUBMIT_IN_FLIGHT"
	CodeUploadTooLarge     = "UPLOAD_TOO_LARGE"
	CodeUploadWrongType    = "UPLOAD_WRONG_TYPE"
	CodeUploadCompressFail = "UPLOAD_COMPRESS_FAILED"
	CodeUploadFailed       = "UPLOAD_FAILED"
	CodePersistence        = "PERSISTENCE_ERROR"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// Submit on the same session has not finished. The second call has no
// side effects.
var ErrSubmitInFlight = shared.NewDomainError(CodeSubmitInFlight, "A submit is already in progress")

// ValidationError carries per-field validation messages.
type ValidationError struct {
	Fields map[string]string
}

// Error returns the first field error in deterministic order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%s %s", names[0], e.Fields[names[0]])
}

// DomainError converts the validation error into the shared error shape.
func (e *ValidationError) DomainError() *shared.DomainError {
	return shared.NewDomainError(CodeValidation, e.Error())
}

// NewUploadError wraps an upload failure with a pipeline error code.
func NewUploadError(code string, cause error) *shared.DomainError {
	if code == "" {
		code = CodeUploadFailed
	}
	return shared.NewDomainError(code, cause.Error())
}

// NewPersistenceError wraps a gateway failure.
func NewPersistenceError(cause error) *shared.DomainError {
	return shared.NewDomainError(CodePersistence, cause.Error())
}
