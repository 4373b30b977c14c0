// Package services provides domain services that orchestrate business operations
// across domain models of the order intake system.
//
// The package includes:
//   - CourierAllocator: selects a courier for an order from the rule table
package services
