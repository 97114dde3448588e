package errors

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// ErrorCodeInvalidValue is used when a value cannot be
	// parsed into the domain of the tree
	ErrorCodeInvalidValue = 1000 + iota

	// ErrorCodeUnreadableInput is used when an input source
	// cannot be read
	ErrorCodeUnreadableInput

	// ErrorCodeInvalidConfig is used when the configuration
	// provided is not valid
	ErrorCodeInvalidConfig
)

// Error is returned when an operation fails because of
// its input, as opposed to an internal failure
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`

	// Cause is the underlying error, if any
	Cause error `json:"-"`
}

// New creates an error with the provided code and description
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the provided code and description
// caused by err
func Wrap(err error, code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...), Cause: err}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Description + ": " + e.Cause.Error()
	}

	return e.Description
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Fields returns the error as structured logging fields
func (e *Error) Fields() logrus.Fields {
	fields := logrus.Fields{
		"error_code":  e.ErrorCode,
		"description": e.Description,
	}

	if e.Cause != nil {
		fields["cause"] = e.Cause.Error()
	}

	return fields
}
