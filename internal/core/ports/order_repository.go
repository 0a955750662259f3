// Package ports defines the contracts between the ordering use cases and the
// infrastructure that backs them: the relational persistence gateway, its unit
// of work, the in-memory session store and the event publisher.
package ports

import (
	"context"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

// OrderRepository is the persistence gateway for placed orders. It exposes the
// small fixed query surface the ordering flow needs and nothing else.
type OrderRepository interface {
	// NextOrderID allocates the id for a new order: the highest stored id plus
	// one, or 1 for an empty store. Inside a transaction the allocation is
	// serialized until commit or rollback.
	NextOrderID(ctx context.Context) (kernel.OrderID, error)

	// AddItem stores one line of an order. The food item must exist in the
	// price table; its price times quantity is stored as the line total.
	AddItem(ctx context.Context, orderID kernel.OrderID, line order.Line) error

	// AddTracking stores the tracking status row for an order.
	AddTracking(ctx context.Context, orderID kernel.OrderID, status order.Status) error

	// Add stores every line of the order followed by its tracking row.
	Add(ctx context.Context, aggregate *order.Order) error

	// TotalPrice sums the stored line totals of an order.
	TotalPrice(ctx context.Context, orderID kernel.OrderID) (float64, error)

	// Status returns the tracking status of an order. found is false when no
	// tracking row exists.
	Status(ctx context.Context, orderID kernel.OrderID) (status order.Status, found bool, err error)
}
