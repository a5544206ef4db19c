package domain

import "errors"

// Storage-level sentinels. Repositories return these; services translate
// them into the taxonomy below before they reach a caller.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// PreconditionError means the request can never succeed as stated: a
// missing signature, an unknown report, a report already in its terminal
// state. The caller must correct the input, not retry.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// PersistenceError means the finalize write itself failed and the report
// is still incomplete. Retrying the same request is safe.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failure: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DeliveryError means the document could not be handed to the email
// provider. It never invalidates a completed report.
type DeliveryError struct {
	Message string
}

func (e *DeliveryError) Error() string {
	return "delivery failed: " + e.Message
}
