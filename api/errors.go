// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the zbuf library.
//
// Capacity errors are local and recoverable: the caller retries with a
// smaller write or fails its own operation. A type-recovery mismatch is a
// layer protocol violation and is escalated as fatal by the recovery site,
// never silently continued.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInsufficientHeadroom = fmt.Errorf("insufficient headroom")
	ErrInsufficientTailroom = fmt.Errorf("insufficient tailroom")
	ErrPayloadOverrun       = fmt.Errorf("write exceeds payload bounds")
	ErrRegionTooSmall       = fmt.Errorf("span too small for region metadata")
	ErrChainDepth           = fmt.Errorf("chain depth limit exceeded")
	ErrDriverBusy           = fmt.Errorf("driver busy")
	ErrPoolExhausted        = fmt.Errorf("region pool exhausted")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInsufficientHeadroom
	ErrCodeInsufficientTailroom
	ErrCodePayloadOverrun
	ErrCodeBusy
	ErrCodeExhausted
	ErrCodeTypeMismatch
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
