// Package errors provides standardized error handling for jsonedit.
// It defines the error kinds the application can produce and helpers for
// consistent creation, wrapping and inspection of those errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Serialization error kinds
	SerializationFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Output error kinds
	OutputFailed
	// Input error kinds
	InvalidInputData
)

// String returns a short lowercase name for the kind
func (k ErrorKind) String() string {
	switch k {
	case SerializationFailed:
		return "serialization_failed"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case OutputFailed:
		return "output_failed"
	case InvalidInputData:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrSerialization = NewSerializationError("cannot serialize pairs", "", nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// SerializationError is returned when the pair mapping cannot be encoded as
// JSON. key names the pair being encoded when the failure happened.
type SerializationError struct {
	ApplicationError
	key string
}

// NewSerializationError creates a new serialization error
func NewSerializationError(msg string, key string, err error) *SerializationError {
	return &SerializationError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: SerializationFailed,
		},
		key: key,
	}
}

// Error returns the serialization error message
func (e *SerializationError) Error() string {
	if e.key != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: key %q: %v", e.msg, e.key, e.err)
		}
		return fmt.Sprintf("%s: key %q", e.msg, e.key)
	}
	return e.ApplicationError.Error()
}

// Key returns the key of the pair that failed to encode
func (e *SerializationError) Key() string {
	return e.key
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// OutputError represents a failure writing the final JSON object
type OutputError struct {
	ApplicationError
	path string
}

// NewOutputError creates a new output error. An empty path means stdout.
func NewOutputError(msg string, path string, err error) *OutputError {
	return &OutputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: OutputFailed,
		},
		path: path,
	}
}

// Error returns the output error message
func (e *OutputError) Error() string {
	target := e.path
	if target == "" {
		target = "stdout"
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, target, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, target)
}

// Path returns the output path associated with the error
func (e *OutputError) Path() string {
	return e.path
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// NewInputError reports data that does not have the expected shape, such as
// a JSON document that is not a flat object of strings
func NewInputError(msg string, err error) error {
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: InvalidInputData,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first kind other than Unknown found in err's chain.
// Plain wrappers from Wrap and Wrapf are skipped.
func KindOf(err error) ErrorKind {
	for ; err != nil; err = errors.Unwrap(err) {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
	}
	return Unknown
}

// IsSerialization checks if the error is a serialization error
func IsSerialization(err error) bool {
	var serErr *SerializationError
	return errors.As(err, &serErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsOutputError checks if the error is an output error
func IsOutputError(err error) bool {
	var outErr *OutputError
	return errors.As(err, &outErr)
}
