// Package errors defines stable error codes for cdep's failure modes.
//
// Only fatal configuration errors surface through this package. Per-file
// read failures during a scan degrade to sentinel values, and semantic
// non-errors (unresolved includes, empty dirty sets, orphan headers) are
// reported as terminal states, never as errors.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// NoRoots indicates a scan or list was requested without root directories
	NoRoots ErrorCode = "NO_ROOTS"
	// IndexMissing indicates the persisted index artifact was not found
	IndexMissing ErrorCode = "INDEX_MISSING"
	// IndexCorrupt indicates the persisted index artifact could not be decoded
	IndexCorrupt ErrorCode = "INDEX_CORRUPT"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
}

// CdepError represents a cdep error with a stable code
type CdepError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error
}

// New creates a CdepError with suggested fixes attached for its code.
func New(code ErrorCode, message string, cause error) *CdepError {
	return &CdepError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *CdepError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CdepError) Unwrap() error {
	return e.cause
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	IndexMissing: {
		{
			Command:     "cdep scan <roots...>",
			Description: "Build the include graph before querying it",
		},
	},
	IndexCorrupt: {
		{
			Command:     "cdep scan <roots...>",
			Description: "Rebuild the index from scratch",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
