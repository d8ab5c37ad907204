package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConnection     = errors.New("backend unreachable")
	ErrAuth           = errors.New("authentication failed")
	ErrQuery          = errors.New("query execution failed")
	ErrNotFound       = errors.New("document not found")
	ErrParse          = errors.New("response parse failed")
	ErrInvalidRequest = errors.New("invalid request")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// payloadPreviewLimit bounds how much of an offending payload a parse
// error may carry, so error messages stay readable.
const payloadPreviewLimit = 500

// ParsePayloadError is an ErrParse carrying a bounded preview of the
// payload that could not be converted.
type ParsePayloadError struct {
	Operation string
	Preview   string
	Err       error
}

func NewParsePayloadError(operation, payload string, err error) *ParsePayloadError {
	preview := payload
	if len(preview) > payloadPreviewLimit {
		preview = preview[:payloadPreviewLimit]
	}
	return &ParsePayloadError{Operation: operation, Preview: preview, Err: err}
}

func (e *ParsePayloadError) Error() string {
	return fmt.Sprintf("%s: %v: %v (payload preview: %q)", e.Operation, ErrParse, e.Err, e.Preview)
}

func (e *ParsePayloadError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
