// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and fixed-point monetary values (Money, Percentage).
//
// All value objects are immutable and must be created through their
// constructor functions; zero values fail validation. Monetary values are
// backed by arbitrary-precision decimals so that report accrual keeps full
// precision and rounding happens only where a value leaves the system.
package kernel
