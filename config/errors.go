package config

import "github.com/pkg/errors"

// ErrAlreadyParsed is returned when attempting to parse the
// flags of a Parser more than once
var ErrAlreadyParsed = errors.New("flags already parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

// Unwrap returns the cause of the error
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
