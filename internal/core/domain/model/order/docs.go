// Package order provides the Order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root holding customer, destination, weight, courier and status
//   - Status: the lifecycle state, stored as text
//   - TransitionPolicy: strict or legacy handling of status changes
//
// Key business rules:
//   - An order always carries a courier; it cannot be constructed without one
//   - New orders start in Pending
//   - Lifecycle: Pending -> InTransit -> Delivered, with Cancelled reachable from
//     any non-terminal state
//   - The order id is assigned by storage exactly once and never changes
package order
