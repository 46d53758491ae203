package chat

import "fmt"

// ValidationError reports malformed or missing input. Surfaced as 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// StorageError reports an unreachable or failing datastore. Surfaced as 500;
// the core does not retry, the client may resubmit the whole request.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// UpstreamError reports an assistant responder failure or timeout. Surfaced
// as 502; the already-persisted user message is not rolled back.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("assistant responder failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
