// Package draft holds the pending order a conversation builds up before it is
// placed: an insertion-ordered mapping from food item to quantity.
//
// A draft has no identity of its own. It is owned by exactly one session in
// the session store and is consumed when the order is completed.
package draft

import (
	"orderbot/internal/core/domain/model/order"
)

// Order is a pending, not yet persisted order. The zero value is an empty draft.
// It is not safe for concurrent use; the session store serializes access.
type Order struct {
	lines []order.Line
	index map[string]int
}

// New returns an empty draft.
func New() *Order {
	return &Order{index: make(map[string]int)}
}

// Merge adds lines to the draft. A food item already present keeps its position
// and takes the new quantity; new items are appended.
func (d *Order) Merge(lines []order.Line) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	for _, l := range lines {
		if i, ok := d.index[l.FoodItem()]; ok {
			d.lines[i] = l
			continue
		}
		d.index[l.FoodItem()] = len(d.lines)
		d.lines = append(d.lines, l)
	}
}

// Remove deletes the named food items. It returns, in request order, the items
// that were removed and the ones that were not in the draft. Naming an item
// twice reports the second mention as absent.
func (d *Order) Remove(foodItems []string) (removed, absent []string) {
	drop := make(map[string]struct{})
	for _, item := range foodItems {
		_, present := d.index[item]
		_, dropped := drop[item]
		if !present || dropped {
			absent = append(absent, item)
			continue
		}
		drop[item] = struct{}{}
		removed = append(removed, item)
	}

	if len(drop) == 0 {
		return removed, absent
	}

	kept := d.lines[:0]
	d.index = make(map[string]int, len(d.lines))
	for _, l := range d.lines {
		if _, ok := drop[l.FoodItem()]; ok {
			continue
		}
		d.index[l.FoodItem()] = len(kept)
		kept = append(kept, l)
	}
	d.lines = kept

	return removed, absent
}

// Lines returns a copy of the lines in insertion order.
func (d *Order) Lines() []order.Line {
	out := make([]order.Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// Quantity returns the quantity of a food item, if present.
func (d *Order) Quantity(foodItem string) (int, bool) {
	i, ok := d.index[foodItem]
	if !ok {
		return 0, false
	}
	return d.lines[i].Quantity(), true
}

// Len returns the number of distinct food items.
func (d *Order) Len() int {
	return len(d.lines)
}

// IsEmpty reports whether the draft has no items.
func (d *Order) IsEmpty() bool {
	return len(d.lines) == 0
}

// String renders the draft, e.g. "2 Mango, 1 Chowmein".
func (d *Order) String() string {
	return order.JoinLines(d.lines)
}
