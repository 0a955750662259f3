package commands

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand places the session's pending order.
//
// Example:
//
//	cmd, _ := NewCompleteOrderCommand(sessionID)
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // nothing to place
//	case errors.Is(err, ErrOrderNotSaved):
//	    // storage failed, the draft is gone
//	case err == nil:
//	    fmt.Printf("order #%s, total %.2f\n", res.OrderID, res.Total)
//	}
type CompleteOrderCommand struct {
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(sessionID kernel.SessionID) (CompleteOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}
