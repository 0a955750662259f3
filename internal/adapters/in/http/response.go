package http

import (
	"fmt"
	"strings"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

// Fixed replies sent back to the agent.
const (
	textUnknownIntent  = "Sorry, I didn't understand that intent."
	textGenericFailure = "An error occurred while processing your request. Please try again."
	textUnclearOrder   = "Sorry I didn't understand. Can you please specify food items and quantities clearly?"
	textOrderNotFound  = "I'm having trouble finding your order. Sorry! Can you place a new order please?"
	textBackendError   = "Sorry, I couldn't process your order due to a backend error. Please place a new order again"
	textOrderEmpty     = "Your order is now empty!"

	textAddFailure      = "An error occurred while adding items to your order. Please try again."
	textRemoveFailure   = "An error occurred while removing items from your order. Please try again."
	textCompleteFailure = "An error occurred while completing your order. Please try again."
	textTrackFailure    = "An error occurred while tracking your order. Please try again."
)

func addedText(lines []order.Line) string {
	return fmt.Sprintf("So far you have: %s. Do you need anything else?", order.JoinLines(lines))
}

func removedText(res commands.RemoveFromOrderResult) string {
	var b strings.Builder

	if len(res.Removed) > 0 {
		fmt.Fprintf(&b, "Removed %s from your order. ", strings.Join(res.Removed, ", "))
	}
	if len(res.Absent) > 0 {
		fmt.Fprintf(&b, "The items %s are not in your current order. ", strings.Join(res.Absent, ", "))
	}

	if len(res.Remaining) == 0 {
		b.WriteString(textOrderEmpty)
	} else {
		fmt.Fprintf(&b, "Here is what is left in your order: %s. Do you need anything else ?",
			order.JoinLines(res.Remaining))
	}

	return b.String()
}

func placedText(res commands.CompleteOrderResult) string {
	return fmt.Sprintf("Awesome. We have placed your order. Here is your order id # %s. "+
		"Your order total is %.2f which you can pay at the time of delivery!", res.OrderID, res.Total)
}

func statusText(id kernel.OrderID, status order.Status) string {
	return fmt.Sprintf("The order status for order id: %s is: %s", id, status)
}

func noOrderText(id int64) string {
	return fmt.Sprintf("No order found with order id: %d", id)
}
