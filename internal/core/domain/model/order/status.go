package order

import (
	"fmt"

	"orderbot/internal/pkg/errs"
)

// Status is the tracking status stored for a placed order. Statuses written by
// other back-office tools are read back verbatim, so unknown values are
// representable; only the known ones may be written by this service.
type Status string

const (
	// InProgress is assigned when the order is placed.
	InProgress Status = "in progress"

	// InTransit means the order left the kitchen.
	InTransit Status = "in transit"

	// Delivered is final.
	Delivered Status = "delivered"
)

func knownStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		InProgress: {},
		InTransit:  {},
		Delivered:  {},
	}
}

// Validate fails for statuses this service does not write.
func (s Status) Validate() error {
	if _, ok := knownStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
