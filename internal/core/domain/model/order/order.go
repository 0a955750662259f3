package order

import (
	"errors"
	"fmt"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when placing an order without food items.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
)

// Order is a placed order. It is built from a conversation's draft once the
// order id has been allocated and is immutable afterwards; status changes
// after placement happen outside this service.
//
// Order follows these invariants:
//   - Must have a valid order id
//   - Must have at least one line, each with a distinct food item
//   - Starts in InProgress
type Order struct {
	id     kernel.OrderID
	lines  []Line
	status Status

	isConstructed bool
}

// NewOrder creates a placed order in the InProgress status.
//
// Example:
//
//	id, _ := kernel.NewOrderID(7)
//	mango, _ := order.NewLine("Mango", 2)
//	o, err := order.NewOrder(id, []order.Line{mango})
func NewOrder(id kernel.OrderID, lines []Line) (*Order, error) {
	o := &Order{
		status:        InProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order id.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Lines returns a copy of the order lines in the order they were added.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Status returns the tracking status.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, dup := seen[l.FoodItem()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines", fmt.Errorf("%q appears more than once", l.FoodItem()))
		}
		seen[l.FoodItem()] = struct{}{}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
