package queries

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks up the tracking status of a placed order.
//
// Example:
//
//	id, _ := kernel.NewOrderID(41)
//	query, _ := NewTrackOrderQuery(id)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Printf("No order found with order id: %s\n", id)
//	}
type TrackOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a status lookup for orderID.
func NewTrackOrderQuery(orderID kernel.OrderID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// TrackOrderQueryResponse carries the stored status verbatim.
type TrackOrderQueryResponse struct {
	OrderID kernel.OrderID
	Status  order.Status
}
