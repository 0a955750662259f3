package ports

import (
	"context"
	"time"

	"orderbot/internal/core/domain/model/draft"
	"orderbot/internal/core/domain/model/kernel"
)

// SessionStore owns the pending order of every live conversation. Access to a
// single session is exclusive: Acquire blocks while another request holds the
// same session, so operations on one conversation are serialized while
// different conversations proceed independently.
type SessionStore interface {
	// Acquire locks the session, creating an empty entry if needed. The caller
	// must Release the returned session. It fails only when ctx is done first.
	Acquire(ctx context.Context, id kernel.SessionID) (Session, error)

	// EvictExpired drops sessions idle since before now minus the store's TTL
	// and returns how many were dropped. Sessions currently held are skipped.
	EvictExpired(now time.Time) int

	// Len returns the number of tracked sessions.
	Len() int
}

// Session is an exclusively held conversation entry. Methods must not be used
// after Release.
type Session interface {
	ID() kernel.SessionID

	// Draft returns the pending order, if the session has one.
	Draft() (*draft.Order, bool)

	// Save stores d as the session's pending order and refreshes its idle timer.
	Save(d *draft.Order)

	// Delete drops the pending order and the session entry.
	Delete()

	// Release gives up exclusive access.
	Release()
}
