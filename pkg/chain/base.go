package chain

import (
	"context"
)

// BaseHandler provides the successor link shared by all handlers
type BaseHandler struct {
	next Handler
}

// SetNext sets the next handler in the chain
func (h *BaseHandler) SetNext(handler Handler) {
	h.next = handler
}

// Next returns the next handler in the chain
func (h *BaseHandler) Next() Handler {
	return h.next
}

// Forward passes the request to the next handler.
// It reports whether a successor existed; the successor's own result is not propagated.
func (h *BaseHandler) Forward(ctx context.Context, req *Request) bool {
	if h.next == nil {
		return false
	}
	h.next.Handle(ctx, req)
	return true
}

// Handle passes the request to the next handler in the chain
func (h *BaseHandler) Handle(ctx context.Context, req *Request) bool {
	return h.Forward(ctx, req)
}
