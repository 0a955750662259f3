package commands

import (
	"context"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// RemoveFromOrderResult describes what happened to each named item and what
// is left. Removed and Absent keep the order the items were named in.
type RemoveFromOrderResult struct {
	Removed   []string
	Absent    []string
	Remaining []order.Line
}

// RemoveFromOrderCommandHandler removes items from a pending order.
type RemoveFromOrderCommandHandler struct {
	store ports.SessionStore
}

func NewRemoveFromOrderCommandHandler(store ports.SessionStore) RemoveFromOrderCommandHandler {
	return RemoveFromOrderCommandHandler{
		store: store,
	}
}

// Handle returns ErrOrderNotFound when the session has no pending order.
// A draft emptied by removal stays in the session.
func (h *RemoveFromOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveFromOrderCommand,
) (RemoveFromOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveFromOrderResult{}, err
	}

	session, err := h.store.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return RemoveFromOrderResult{}, err
	}
	defer session.Release()

	pending, ok := session.Draft()
	if !ok {
		return RemoveFromOrderResult{}, ErrOrderNotFound
	}

	removed, absent := pending.Remove(cmd.FoodItems())
	session.Save(pending)

	return RemoveFromOrderResult{
		Removed:   removed,
		Absent:    absent,
		Remaining: pending.Lines(),
	}, nil
}
