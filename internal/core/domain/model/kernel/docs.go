// Package kernel contains shared value objects used across the freight domain.
//
// The kernel holds primitives that carry meaning in every bounded part of the
// model: entity identifiers (UUID) and currency-tagged monetary amounts
// (Money). All kernel types are immutable value objects created through
// validating factory functions; their zero values are invalid and rejected
// by Validate.
package kernel
