// Package services provides domain services that implement business rules
// spanning more than a single aggregate in the production tracking system.
//
// The package includes:
//   - OverdueClassifier: A domain service deciding which orders count as
//     overdue for the dashboard and the daily digest
//
// Domain services hold logic that does not naturally belong to one aggregate
// root, following Domain-Driven Design principles.
package services
