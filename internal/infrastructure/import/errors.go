package csvimport

import (
	"errors"
	"fmt"
)

// Import error codes reported per row
const (
	ErrCodeRequiredField = "IMPORT_REQUIRED_FIELD"
	ErrCodeInvalidType   = "IMPORT_INVALID_TYPE"
	ErrCodeInvalidFormat = "IMPORT_INVALID_FORMAT"
	ErrCodeMalformedRow  = "IMPORT_MALFORMED_ROW"
)

// Common import errors
var (
	ErrEmptyFile       = errors.New("CSV file is empty")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
	ErrMissingHeader   = errors.New("CSV file missing header row")
	ErrNoDataRows      = errors.New("CSV file contains no data rows")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
)

// RowError describes a validation failure in one row of the file.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, column, code, message string) RowError {
	return RowError{Row: row, Column: column, Code: code, Message: message}
}
