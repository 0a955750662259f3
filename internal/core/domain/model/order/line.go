package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one food item with a positive whole quantity.
type Line struct {
	foodItem string
	quantity int

	guard guard.ConstructorGuard
}

// NewLine validates the food item name and quantity.
func NewLine(foodItem string, quantity int) (Line, error) {
	line := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setFoodItem(foodItem),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// FoodItem returns the menu item name as the user said it.
func (l Line) FoodItem() string {
	return l.foodItem
}

// Quantity returns the number of portions.
func (l Line) Quantity() int {
	return l.quantity
}

// String renders the line as "<quantity> <item>".
func (l Line) String() string {
	return strconv.Itoa(l.quantity) + " " + l.foodItem
}

func (l *Line) setFoodItem(foodItem string) error {
	if strings.TrimSpace(foodItem) == "" {
		return errs.NewValueIsRequiredError("food item")
	}
	l.foodItem = foodItem
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

// JoinLines renders lines as a comma separated list, e.g. "2 Mango, 1 Chowmein".
func JoinLines(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ", ")
}
