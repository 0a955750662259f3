// Package order provides the placed-order aggregate: an order id, the food
// lines that were saved under it, and the tracking status.
//
// The package includes:
//   - Line: one food item and its quantity, shared with the pending draft
//   - Order: the aggregate root created when a conversation completes its draft
//   - Status: the tracking status stored alongside the order
//
// Key business rules:
//   - An order has a valid id and at least one line
//   - A food item appears at most once per order
//   - A new order starts in the "in progress" status
package order
