package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// CompleteOrderResult identifies the placed order and its price.
type CompleteOrderResult struct {
	OrderID kernel.OrderID
	Total   float64
}

// CompleteOrderCommandHandler persists a pending order and consumes the draft.
//
// The whole placement runs in one unit of work: allocate the id, store every
// line and the tracking row, read back the total, commit. The draft is removed
// from the session before storage is touched, so it is consumed exactly once
// whatever the outcome.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	store      ports.SessionStore
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	store ports.SessionStore,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		publisher:  publisher,
		logger:     logger.With("component", "complete_order_handler"),
	}
}

// Handle returns ErrOrderNotFound when the session has no pending order (or
// an emptied one) and ErrOrderNotSaved when storage failed.
func (h *CompleteOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrderCommand,
) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	session, err := h.store.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return CompleteOrderResult{}, err
	}
	defer session.Release()

	pending, ok := session.Draft()
	if !ok {
		return CompleteOrderResult{}, ErrOrderNotFound
	}
	session.Delete()

	if pending.IsEmpty() {
		return CompleteOrderResult{}, ErrOrderNotFound
	}

	placed, total, err := h.place(ctx, pending.Lines())
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to place order",
			"session_id", cmd.SessionID().String(), "error", err)
		return CompleteOrderResult{}, fmt.Errorf("%w: %w", ErrOrderNotSaved, err)
	}

	h.logger.InfoContext(ctx, "Order placed",
		"order_id", placed.ID().Int64(), "session_id", cmd.SessionID().String(), "total", total)

	h.publish(ctx, ports.OrderPlaced{
		Order:     placed,
		SessionID: cmd.SessionID(),
		Total:     total,
		PlacedAt:  time.Now().UTC(),
	})

	return CompleteOrderResult{OrderID: placed.ID(), Total: total}, nil
}

func (h *CompleteOrderCommandHandler) place(ctx context.Context, lines []order.Line) (*order.Order, float64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	id, err := orderRepo.NextOrderID(ctx)
	if err != nil {
		return nil, 0, err
	}

	placed, err := order.NewOrder(id, lines)
	if err != nil {
		return nil, 0, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, 0, err
	}

	total, err := orderRepo.TotalPrice(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, 0, err
	}

	return placed, total, nil
}

func (h *CompleteOrderCommandHandler) publish(ctx context.Context, event ports.OrderPlaced) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish order placed event",
			"order_id", event.Order.ID().Int64(), "error", err)
	}
}
