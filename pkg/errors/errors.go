package errors

import (
	"fmt"
)

// ParseError is returned when a settings or dotenv file cannot be decoded.
// Line is zero when the decoder did not report one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps err with the file it came from.
func NewParseError(path string, line int, err error) error {
	pe := &ParseError{Path: path, Line: line, Err: err}
	if err != nil {
		pe.Message = err.Error()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s line %d", e.Path, e.Line)
	}
	return "cannot parse " + where + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the settings key or flag holding a bad value.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Field == "":
		return "invalid value: " + e.Message
	default:
		return "invalid " + e.Field + ": " + e.Message
	}
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError reports a failed clipboard write.
type ClipboardError struct {
	Method string
	Err    error
}

// NewClipboardError constructs a ClipboardError for the given write method.
func NewClipboardError(method string, err error) error {
	return &ClipboardError{Method: method, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Method != "" {
		return fmt.Sprintf("clipboard error [%s]: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError indicates a key-value store read or write failure.
type StoreError struct {
	Key string
	Op  string
	Err error
}

// NewStoreError constructs a StoreError for op ("get", "set", "load", "save") on key.
func NewStoreError(op, key string, err error) error {
	return &StoreError{Key: key, Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("store error: %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
