// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks every aggregate depends on:
//
//   - UUID: immutable entity identifier wrapping github.com/google/uuid
//   - Date: calendar date without a time-of-day component, used for order
//     and return dates where clock time must never influence comparisons
//
// All kernel types are value objects: immutable, comparable, and only
// constructible through factory functions that enforce their invariants.
package kernel
