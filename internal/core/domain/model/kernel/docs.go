// Package kernel provides the identifier value objects shared by the ordering
// domain.
//
// The package includes:
//   - SessionID: the conversation key the NLU platform encodes in output context names
//   - OrderID: the numeric identifier assigned to an order when it is placed
//
// Both types are immutable, have an invalid zero value, and must be created
// through their constructors.
package kernel
