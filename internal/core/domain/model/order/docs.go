// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through a fixed production pipeline of five departments
// (SETTING, PRINT, PRESS, JAHIT, PACKING), each owning a pending/in-progress
// stage pair, before reaching READY_TO_SHIP and finally COMPLETED. Orders may
// leave the pipeline early through CANCELED or RETURNED; all three end states
// are terminal.
//
// Every transition appends one entry to the order's immutable history, which
// serves as the audit trail of who moved the order and when. The department
// stage table in department.go is the single closed mapping that defines the
// pipeline; it has no runtime extension points.
package order
