package chain

import (
	"context"
	"errors"
)

var (
	// ErrNilHandler is returned when a nil handler is passed to an assembly function.
	ErrNilHandler = errors.New("nil handler")

	// ErrSelfLink is returned when a handler would become its own successor.
	ErrSelfLink = errors.New("handler cannot be its own successor")

	// ErrCycle is returned when a link would make the chain loop back on itself.
	ErrCycle = errors.New("link would create a cycle")

	// ErrEmptyChain is returned when a chain has no handlers.
	ErrEmptyChain = errors.New("chain must have at least one handler")
)

// Request is the payload threaded through a chain.
// Handlers rewrite Payload in place; every stage sees the result of the previous one.
type Request struct {
	Payload string
}

// NewRequest returns a request carrying payload.
func NewRequest(payload string) *Request {
	return &Request{Payload: payload}
}

// Handler defines a node in the chain
type Handler interface {
	// Handle processes req and reports whether the chain was handled further.
	Handle(ctx context.Context, req *Request) bool
	// SetNext replaces the successor. A nil handler unlinks the node.
	SetNext(handler Handler)
	// Next returns the successor, or nil for the tail.
	Next() Handler
}
