package commands

import (
	"errors"
)

var (
	// ErrOrderNotFound is returned when the session has no pending order.
	ErrOrderNotFound = errors.New("pending order not found")

	// ErrUnclearOrderLines is returned when food items and quantities cannot be
	// paired into order lines.
	ErrUnclearOrderLines = errors.New("food items and quantities do not pair up")

	// ErrOrderNotSaved is returned when placing the order failed in storage.
	// The pending order is gone either way.
	ErrOrderNotSaved = errors.New("order could not be saved")
)
