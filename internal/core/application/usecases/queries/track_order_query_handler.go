package queries

import (
	"context"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"
)

// OrderStatusReader is the slice of the order repository the lookup needs.
type OrderStatusReader interface {
	Status(ctx context.Context, orderID kernel.OrderID) (order.Status, bool, error)
}

// TrackOrderQueryHandler reads order status from storage. It never touches
// session state.
type TrackOrderQueryHandler struct {
	reader OrderStatusReader
}

func NewTrackOrderQueryHandler(reader OrderStatusReader) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{reader: reader}
}

// Handle returns an errs.ObjectNotFoundError when no tracking row exists.
// Storage failures are returned as they are.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	status, found, err := h.reader.Status(ctx, query.OrderID())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	if !found {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID().Int64())
	}

	return TrackOrderQueryResponse{
		OrderID: query.OrderID(),
		Status:  status,
	}, nil
}
