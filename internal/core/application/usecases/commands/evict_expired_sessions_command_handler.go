package commands

import (
	"context"
	"log/slog"

	"orderbot/internal/core/ports"
)

type EvictExpiredSessionsCommandHandler struct {
	store  ports.SessionStore
	logger *slog.Logger
}

func NewEvictExpiredSessionsCommandHandler(
	store ports.SessionStore,
	logger *slog.Logger,
) EvictExpiredSessionsCommandHandler {
	return EvictExpiredSessionsCommandHandler{
		store:  store,
		logger: logger.With("component", "session_eviction"),
	}
}

// Handle evicts idle sessions and returns how many were dropped.
func (h *EvictExpiredSessionsCommandHandler) Handle(ctx context.Context, cmd EvictExpiredSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	evicted := h.store.EvictExpired(cmd.Now())
	if evicted > 0 {
		h.logger.InfoContext(ctx, "Evicted idle sessions", "evicted", evicted, "remaining", h.store.Len())
	}

	return evicted, nil
}
