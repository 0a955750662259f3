// Package intent is the closed set of NLU intents the fulfillment webhook acts on.
//
// The NLU platform classifies each user turn and sends the intent's display
// name. Parse maps it onto Kind; anything unrecognised becomes Unknown, so a
// switch over Kind covers every request the webhook can receive.
package intent

// Kind is one of the recognised intents or Unknown.
type Kind int

const (
	// Unknown is any display name not listed below.
	Unknown Kind = iota

	// AddToOrder adds food items with quantities to the session's draft.
	AddToOrder

	// RemoveFromOrder removes food items from the session's draft.
	RemoveFromOrder

	// CompleteOrder places the draft as a persisted order.
	CompleteOrder

	// TrackOrder looks up the status of a placed order.
	TrackOrder
)

// Display names as configured in the NLU agent. The context suffix is part of
// the name because follow-up intents are only active inside that context.
const (
	AddToOrderName      = "order.add - context: ongoing-order"
	RemoveFromOrderName = "order.remove - context: ongoing-order"
	CompleteOrderName   = "order.complete - context: ongoing-order"
	TrackOrderName      = "track.order - context: ongoing-tracking"
)

// Parse maps a display name onto its Kind. Matching is exact.
func Parse(displayName string) Kind {
	switch displayName {
	case AddToOrderName:
		return AddToOrder
	case RemoveFromOrderName:
		return RemoveFromOrder
	case CompleteOrderName:
		return CompleteOrder
	case TrackOrderName:
		return TrackOrder
	default:
		return Unknown
	}
}

func (k Kind) String() string {
	switch k {
	case AddToOrder:
		return "add_to_order"
	case RemoveFromOrder:
		return "remove_from_order"
	case CompleteOrder:
		return "complete_order"
	case TrackOrder:
		return "track_order"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}
