package chain

import (
	"context"
	"log/slog"
)

// GateHandler forwards only the requests its predicate accepts.
// A rejected request is swallowed: it is neither changed nor forwarded.
type GateHandler struct {
	BaseHandler
	accept func(req *Request) bool
	logger *slog.Logger
}

// NewGateHandler returns an unlinked GateHandler. A nil predicate accepts every request.
func NewGateHandler(accept func(req *Request) bool, logger *slog.Logger) *GateHandler {
	if accept == nil {
		accept = func(*Request) bool { return true }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GateHandler{accept: accept, logger: logger}
}

// Handle checks the request and passes it to the next handler when accepted
func (h *GateHandler) Handle(ctx context.Context, req *Request) bool {
	if !h.accept(req) {
		h.logger.Warn("GateHandler: request rejected, stopping chain", "payloadLen", len(req.Payload))
		return false
	}
	return h.Forward(ctx, req)
}

// MaxPayload accepts requests whose payload is at most n bytes long.
func MaxPayload(n int) func(req *Request) bool {
	return func(req *Request) bool {
		return len(req.Payload) <= n
	}
}
