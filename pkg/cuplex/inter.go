package cuplex

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the message was sent as a failure
	Err() error
	// IsSuccess returns true if the message was sent as a success
	IsSuccess() bool
}

// Identified is implemented by everything that travels through a node tree.
type Identified interface {
	Id() uuid.UUID
}

var (
	_ WithError[int] = Result[int]{}
	_ Identified     = Result[int]{}
)
