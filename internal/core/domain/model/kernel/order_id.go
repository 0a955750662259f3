package kernel

import (
	"math"
	"strconv"

	"orderbot/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is the sequential identifier of a placed order. Ids start at 1; the
// persistence gateway allocates the next one as the current maximum plus one.
type OrderID struct {
	value int64
}

// NewOrderID validates that value is a positive id.
func NewOrderID(value int64) (OrderID, error) {
	if value < 1 {
		return OrderID{}, errs.NewValueIsOutOfRangeError("order id", value, int64(1), int64(math.MaxInt64))
	}
	return OrderID{value: value}, nil
}

// Int64 returns the numeric id as stored in the database.
func (o OrderID) Int64() int64 {
	return o.value
}

// String renders the id the way it is read back to the user ("7").
func (o OrderID) String() string {
	return strconv.FormatInt(o.value, 10)
}

// IsEqual reports whether both ids are the same.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.value == other.value
}

// Validate fails for the zero value.
func (o OrderID) Validate() error {
	if o.value == 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
