package commands

import (
	"errors"
	"time"

	"orderbot/internal/pkg/guard"
)

var ErrEvictExpiredSessionsCommandIsNotConstructed = errors.New(
	"EvictExpiredSessionsCommand must be created via NewEvictExpiredSessionsCommand constructor",
)

// EvictExpiredSessionsCommand drops sessions that have been idle longer than
// the store's TTL as of Now.
type EvictExpiredSessionsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewEvictExpiredSessionsCommand(now time.Time) EvictExpiredSessionsCommand {
	return EvictExpiredSessionsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

func (c EvictExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrEvictExpiredSessionsCommandIsNotConstructed)
}

func (c EvictExpiredSessionsCommand) Now() time.Time {
	return c.now
}
