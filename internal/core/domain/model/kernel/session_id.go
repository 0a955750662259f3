package kernel

import (
	"fmt"
	"strings"

	"orderbot/internal/pkg/errs"
)

const contextsSeparator = "/contexts/"

// ErrSessionIDIsNotConstructed is returned when validating a zero-value SessionID.
var ErrSessionIDIsNotConstructed = errs.NewValueIsRequiredError(
	"SessionID must be created via NewSessionID or SessionIDFromContextName",
)

// SessionID identifies one ordering conversation. It is the key of the
// in-memory session store and never leaves the process.
type SessionID struct {
	value string
}

// NewSessionID wraps a raw, non-blank session identifier.
func NewSessionID(value string) (SessionID, error) {
	if strings.TrimSpace(value) == "" {
		return SessionID{}, errs.NewValueIsRequiredError("session id")
	}
	return SessionID{value: value}, nil
}

// SessionIDFromContextName derives the session id from an output context name.
// The name is split on "/contexts/" and the trailing segment is the id, e.g.
//
//	projects/p/agent/sessions/abc/contexts/ongoing-order-s1  ->  "ongoing-order-s1"
//
// A name without the separator, or with nothing after it, is rejected.
func SessionIDFromContextName(name string) (SessionID, error) {
	idx := strings.LastIndex(name, contextsSeparator)
	if idx < 0 {
		return SessionID{}, errs.NewValueIsInvalidErrorWithCause(
			"output context name",
			fmt.Errorf("%q does not contain %q", name, contextsSeparator),
		)
	}
	return NewSessionID(name[idx+len(contextsSeparator):])
}

// String returns the raw identifier.
func (s SessionID) String() string {
	return s.value
}

// IsEqual reports whether both ids hold the same value.
func (s SessionID) IsEqual(other SessionID) bool {
	return s.value == other.value
}

// Validate fails for the zero value.
func (s SessionID) Validate() error {
	if s.value == "" {
		return ErrSessionIDIsNotConstructed
	}
	return nil
}
