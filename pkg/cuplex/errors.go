package cuplex

import (
	"errors"
	"fmt"
)

var (
	// ErrNoChildren is returned by Recv on a root node that has neither
	// queued data nor children that could ever supply it.
	ErrNoChildren = errors.New("cuplex: cannot receive on a channel with no children")
	// ErrEmptyPool is returned when a pool is built without workers.
	ErrEmptyPool = errors.New("cuplex: pool must have at least one worker")
	// ErrInvalidCount is returned when a mutex is built with count < 1.
	ErrInvalidCount = errors.New("cuplex: mutex count must be >= 1")
	// ErrRejected marks a sender's handshake that was settled as a failure.
	ErrRejected = errors.New("cuplex: handshake rejected")
)

// RejectedError is the outcome of a SendErr handshake once a receiver
// accepted the package. Payload is the error that was sent.
type RejectedError struct {
	Payload error
}

func (e *RejectedError) Error() string {
	if e.Payload != nil {
		return fmt.Sprintf("%s: %s", ErrRejected.Error(), e.Payload.Error())
	}
	return ErrRejected.Error()
}

func (e *RejectedError) Unwrap() []error {
	if e.Payload == nil {
		return []error{ErrRejected}
	}
	return []error{ErrRejected, e.Payload}
}

// RecoveryError wraps a panic raised inside a worker task together with the
// stack trace at the point of panic.
type RecoveryError struct {
	PanicValue any
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("cuplex: worker panic recovered: %v", e.PanicValue)
}
