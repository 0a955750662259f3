package commands

import (
	"context"

	"orderbot/internal/core/domain/model/draft"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// AddToOrderResult is the pending order after the merge.
type AddToOrderResult struct {
	Draft []order.Line
}

// AddToOrderCommandHandler merges lines into the session's pending order,
// creating one when the session has none.
type AddToOrderCommandHandler struct {
	store ports.SessionStore
}

func NewAddToOrderCommandHandler(store ports.SessionStore) AddToOrderCommandHandler {
	return AddToOrderCommandHandler{
		store: store,
	}
}

// Handle merges the command's lines. Repeating the same command leaves the
// draft unchanged since quantities are overwritten, not summed.
func (h *AddToOrderCommandHandler) Handle(ctx context.Context, cmd AddToOrderCommand) (AddToOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddToOrderResult{}, err
	}

	session, err := h.store.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return AddToOrderResult{}, err
	}
	defer session.Release()

	pending, ok := session.Draft()
	if !ok {
		pending = draft.New()
	}
	pending.Merge(cmd.Lines())
	session.Save(pending)

	return AddToOrderResult{Draft: pending.Lines()}, nil
}
