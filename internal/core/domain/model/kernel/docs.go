// Package kernel provides core domain primitives shared by the order and rule models.
//
// The package includes:
//   - Weight: a strictly positive, finite parcel weight with an inclusive Fits check
//
// Primitives are immutable value objects guarded against zero-value use, so a Weight
// that reached a domain object has already been validated.
package kernel
