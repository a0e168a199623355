package chain

import (
	"context"
	"log/slog"
)

// DuplicateHandler doubles the payload, appends a newline and forwards the request
type DuplicateHandler struct {
	BaseHandler
	logger *slog.Logger
}

// NewDuplicateHandler returns an unlinked DuplicateHandler.
func NewDuplicateHandler(logger *slog.Logger) *DuplicateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DuplicateHandler{logger: logger}
}

// Handle rewrites the payload and passes the request to the next handler
func (h *DuplicateHandler) Handle(ctx context.Context, req *Request) bool {
	logger := h.logger.With("payloadLen", len(req.Payload))
	logger.Debug("DuplicateHandler: starting")

	req.Payload = req.Payload + req.Payload + "\n"

	handled := h.Forward(ctx, req)
	logger.Debug("DuplicateHandler: done", "handled", handled, "newPayloadLen", len(req.Payload))
	return handled
}
