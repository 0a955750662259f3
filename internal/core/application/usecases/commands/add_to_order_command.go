package commands

import (
	"errors"
	"fmt"
	"math"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/guard"
)

var ErrAddToOrderCommandIsNotConstructed = errors.New(
	"AddToOrderCommand must be created via NewAddToOrderCommand constructor",
)

// AddToOrderCommand merges food items into the session's pending order.
//
// Items and quantities are paired by position. The constructor fails with
// ErrUnclearOrderLines when the lists differ in length, are empty, or carry a
// quantity that is not a positive whole number.
//
// Example:
//
//	cmd, err := NewAddToOrderCommand(sessionID, []string{"Mango", "Chowmein"}, []float64{2, 1})
//	if errors.Is(err, ErrUnclearOrderLines) {
//	    // ask the user to repeat the order
//	}
type AddToOrderCommand struct {
	sessionID kernel.SessionID
	lines     []order.Line

	guard guard.ConstructorGuard
}

// NewAddToOrderCommand pairs foodItems with quantities into order lines.
func NewAddToOrderCommand(
	sessionID kernel.SessionID,
	foodItems []string,
	quantities []float64,
) (AddToOrderCommand, error) {
	cmd := AddToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionID.Validate(); err != nil {
		return AddToOrderCommand{}, err
	}
	cmd.sessionID = sessionID

	lines, err := pairLines(foodItems, quantities)
	if err != nil {
		return AddToOrderCommand{}, err
	}
	cmd.lines = lines

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddToOrderCommandIsNotConstructed)
}

func (c AddToOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Lines returns the requested lines in the order they were said.
func (c AddToOrderCommand) Lines() []order.Line {
	out := make([]order.Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func pairLines(foodItems []string, quantities []float64) ([]order.Line, error) {
	if len(foodItems) != len(quantities) {
		return nil, fmt.Errorf("%w: %d food items, %d quantities",
			ErrUnclearOrderLines, len(foodItems), len(quantities))
	}
	if len(foodItems) == 0 {
		return nil, fmt.Errorf("%w: no food items", ErrUnclearOrderLines)
	}

	lines := make([]order.Line, 0, len(foodItems))
	var errList []error
	for i, item := range foodItems {
		q := quantities[i]
		if q != math.Trunc(q) || q > math.MaxInt32 || q < math.MinInt32 {
			errList = append(errList, fmt.Errorf("quantity %v of %q is not a whole number", q, item))
			continue
		}
		line, err := order.NewLine(item, int(q))
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, line)
	}

	if len(errList) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrUnclearOrderLines, errors.Join(errList...))
	}

	return lines, nil
}
