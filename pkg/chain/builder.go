package chain

import (
	"fmt"
	"log/slog"
)

// Builder assembles handlers into a linear chain
type Builder struct {
	handlers []Handler
	logger   *slog.Logger
}

// NewBuilder creates a new chain builder
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		logger: logger,
	}
}

// Append adds handlers to the end of the chain.
// Returns the builder for method chaining.
func (b *Builder) Append(handlers ...Handler) *Builder {
	b.handlers = append(b.handlers, handlers...)
	return b
}

// Build links the appended handlers in order and returns the head.
// The last handler is unlinked so it terminates the chain.
func (b *Builder) Build() (Handler, error) {
	if len(b.handlers) == 0 {
		return nil, ErrEmptyChain
	}

	seen := make(map[Handler]int, len(b.handlers))
	for i, h := range b.handlers {
		if isNil(h) {
			return nil, fmt.Errorf("handler %d: %w", i, ErrNilHandler)
		}
		if j, ok := seen[h]; ok {
			if j == i-1 {
				return nil, fmt.Errorf("handler %d: %w", i, ErrSelfLink)
			}
			return nil, fmt.Errorf("handler %d repeats handler %d: %w", i, j, ErrCycle)
		}
		seen[h] = i
	}

	last := len(b.handlers) - 1
	b.handlers[last].SetNext(nil)
	for i := last - 1; i >= 0; i-- {
		b.handlers[i].SetNext(b.handlers[i+1])
	}

	b.logger.Debug("Builder: chain built", "handlers", len(b.handlers))
	return b.handlers[0], nil
}

// BuildDuplicateChain builds a chain of n duplicate handlers.
// When maxPayload is positive every stage after the first is guarded by a
// MaxPayload gate, so an oversized payload stops the chain.
func (b *Builder) BuildDuplicateChain(n, maxPayload int) (Handler, error) {
	if n < 1 {
		return nil, ErrEmptyChain
	}

	handlers := make([]Handler, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 && maxPayload > 0 {
			handlers = append(handlers, NewGateHandler(MaxPayload(maxPayload), b.logger))
		}
		handlers = append(handlers, NewDuplicateHandler(b.logger))
	}

	return NewBuilder(b.logger).Append(handlers...).Build()
}
