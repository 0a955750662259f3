package ports

import (
	"context"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

// OrderPlaced is emitted once an order has been committed.
type OrderPlaced struct {
	Order     *order.Order
	SessionID kernel.SessionID
	Total     float64
	PlacedAt  time.Time
}

// OrderEventPublisher notifies downstream systems (the kitchen) about orders.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error
}
