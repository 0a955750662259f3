package commands

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/guard"
)

var ErrRemoveFromOrderCommandIsNotConstructed = errors.New(
	"RemoveFromOrderCommand must be created via NewRemoveFromOrderCommand constructor",
)

// RemoveFromOrderCommand drops food items from the session's pending order.
// Quantities are ignored: a named item is removed entirely.
type RemoveFromOrderCommand struct {
	sessionID kernel.SessionID
	foodItems []string

	guard guard.ConstructorGuard
}

func NewRemoveFromOrderCommand(sessionID kernel.SessionID, foodItems []string) (RemoveFromOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RemoveFromOrderCommand{}, err
	}

	items := make([]string, len(foodItems))
	copy(items, foodItems)

	return RemoveFromOrderCommand{
		sessionID: sessionID,
		foodItems: items,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromOrderCommandIsNotConstructed)
}

func (c RemoveFromOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c RemoveFromOrderCommand) FoodItems() []string {
	out := make([]string, len(c.foodItems))
	copy(out, c.foodItems)
	return out
}
