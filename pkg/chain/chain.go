package chain

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Chain provides a simplified interface for dispatching requests through a built chain
type Chain struct {
	head   Handler
	logger *slog.Logger
}

// New creates a chain starting at head
func New(head Handler, logger *slog.Logger) (*Chain, error) {
	if isNil(head) {
		return nil, ErrEmptyChain
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{head: head, logger: logger}, nil
}

// Head returns the first handler of the chain
func (c *Chain) Head() Handler {
	return c.head
}

// Len returns the number of handlers reachable from the head
func (c *Chain) Len() int {
	seen := map[Handler]struct{}{}
	for h := c.head; h != nil; h = h.Next() {
		if _, ok := seen[h]; ok {
			break
		}
		seen[h] = struct{}{}
	}
	return len(seen)
}

// Dispatch runs req through the chain starting at the head and returns the head's verdict
func (c *Chain) Dispatch(ctx context.Context, req *Request) bool {
	logger := c.logger.With("dispatchID", uuid.New())
	if req == nil {
		logger.Warn("Dispatch: nil request, nothing to do")
		return false
	}

	logger.Info("Dispatch: starting", "payloadLen", len(req.Payload))
	handled := c.head.Handle(ctx, req)
	logger.Info("Dispatch: finished", "handled", handled, "payloadLen", len(req.Payload))

	return handled
}
