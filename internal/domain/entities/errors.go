package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is wrapped by validation failures detected before any remote call.
var ErrInvalidRequest = errors.New("invalid file request")

// ErrorKind tags the cases of FileError.
type ErrorKind int

const (
	// KindRemoteAPI tags a RemoteAPIError.
	KindRemoteAPI ErrorKind = iota + 1
	// KindNotFound tags a NotFoundError.
	KindNotFound
	// KindConfiguration tags a ConfigurationError.
	KindConfiguration
)

// String returns the snake_case name of the kind, e.g. "not_found".
func (k ErrorKind) String() string {
	switch k {
	case KindRemoteAPI:
		return "remote_api"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// FileError is implemented by every typed error the file adapter returns.
// Use errors.As against the concrete case to read its payload.
type FileError interface {
	error
	Kind() ErrorKind
}

var (
	_ FileError = (*RemoteAPIError)(nil)
	_ FileError = (*NotFoundError)(nil)
	_ FileError = (*ConfigurationError)(nil)
)

// RemoteAPIError is a non-success response from the hosting service.
type RemoteAPIError struct {
	Operation  string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

// Kind returns KindRemoteAPI.
func (e *RemoteAPIError) Kind() ErrorKind { return KindRemoteAPI }

// Error includes the operation, path, HTTP status and the service's message.
func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf(
		"remote API error: %s %q failed with status %d: %s",
		e.Operation, e.Path, e.StatusCode, e.Message,
	)
}

// Unwrap returns the underlying client error.
func (e *RemoteAPIError) Unwrap() error { return e.Err }

// IsStatus reports whether the response carried the given HTTP status code.
func (e *RemoteAPIError) IsStatus(code int) bool { return e.StatusCode == code }

// NotFoundError means no content exists at Path.
type NotFoundError struct {
	Path string
	Err  error
}

// Kind returns KindNotFound.
func (e *NotFoundError) Kind() ErrorKind { return KindNotFound }

// Error names the missing path.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no content found at %q", e.Path)
}

// Unwrap returns the cause, e.g. the 404 RemoteAPIError, if any.
func (e *NotFoundError) Unwrap() error { return e.Err }

// ConfigurationError means the adapter could not be built from the supplied settings.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

// Kind returns KindConfiguration.
func (e *ConfigurationError) Kind() ErrorKind { return KindConfiguration }

// Error names the rejected field and the reason.
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration for %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}

// Unwrap returns the parse or client error behind the rejection, if any.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// KindOf returns the kind of the first FileError in err's chain, or 0 if there is none.
func KindOf(err error) ErrorKind {
	var fileErr FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind()
	}
	return 0
}
