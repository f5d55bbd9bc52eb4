package order

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Department identifies one of the five production departments an order
// passes through on its way from design to shipment.
//
// Each department owns exactly one (pending, in-progress, next) stage triple.
// The triple table below is the single source of truth for forward
// transitions; adding or removing a department is a change to this table
// and nothing else.
type Department string

const (
	DepartmentSetting Department = "SETTING"
	DepartmentPrint   Department = "PRINT"
	DepartmentPress   Department = "PRESS"
	DepartmentJahit   Department = "JAHIT"
	DepartmentPacking Department = "PACKING"
)

// Stage is a department's slice of the pipeline: the status in which orders
// wait for the department, the status while it works on them, and the status
// it hands off to when done.
type Stage struct {
	Pending    Status
	InProgress Status
	Next       Status
}

// getStageTable returns the closed department-to-stage mapping.
// PACKING hands off to READY_TO_SHIP, ending the production pipeline.
func getStageTable() map[Department]Stage {
	return map[Department]Stage{
		DepartmentSetting: {Pending: StatusPendingSetting, InProgress: StatusInSetting, Next: StatusPendingPrint},
		DepartmentPrint:   {Pending: StatusPendingPrint, InProgress: StatusInPrint, Next: StatusPendingPress},
		DepartmentPress:   {Pending: StatusPendingPress, InProgress: StatusInPress, Next: StatusPendingJahit},
		DepartmentJahit:   {Pending: StatusPendingJahit, InProgress: StatusInJahit, Next: StatusPendingPacking},
		DepartmentPacking: {Pending: StatusPendingPacking, InProgress: StatusInPacking, Next: StatusReadyToShip},
	}
}

// AllDepartments returns the five departments in pipeline order.
func AllDepartments() []Department {
	return []Department{
		DepartmentSetting,
		DepartmentPrint,
		DepartmentPress,
		DepartmentJahit,
		DepartmentPacking,
	}
}

// DepartmentFromString converts a raw string into a validated Department.
func DepartmentFromString(s string) (Department, error) {
	d := Department(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate checks if the Department is one of the five known departments.
func (d Department) Validate() error {
	if _, ok := getStageTable()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"department is invalid",
			fmt.Errorf("%q is not a valid department", string(d)),
		)
	}
	return nil
}

// String returns the persistence form of the department.
func (d Department) String() string {
	return string(d)
}

// Stage returns the department's (pending, in-progress, next) triple.
func (d Department) Stage() (Stage, error) {
	stage, ok := getStageTable()[d]
	if !ok {
		return Stage{}, errs.NewValueIsInvalidErrorWithCause(
			"department is invalid",
			fmt.Errorf("%q is not a valid department", string(d)),
		)
	}
	return stage, nil
}

// Owns reports whether a status belongs to this department's queue.
// A department sees orders that are pending for it or in progress with it.
func (d Department) Owns(s Status) bool {
	stage, ok := getStageTable()[d]
	if !ok {
		return false
	}
	return s == stage.Pending || s == stage.InProgress
}

// Start transitions an order from the department's pending status to its
// in-progress status.
//
// Returns:
//   - (inProgress, nil) if current equals the department's pending status
//   - (StatusUnknown, error) otherwise
func (d Department) Start(current Status) (Status, error) {
	stage, err := d.Stage()
	if err != nil {
		return StatusUnknown, err
	}

	if current != stage.Pending {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be started by %s, expected %s", current, d, stage.Pending),
		)
	}

	return stage.InProgress, nil
}

// Complete transitions an order from the department's in-progress status to
// the next department's pending status (or READY_TO_SHIP for PACKING).
//
// An order must be started before it can be completed: completing directly
// from the pending status is rejected.
//
// Returns:
//   - (next, nil) if current equals the department's in-progress status
//   - (StatusUnknown, error) otherwise
func (d Department) Complete(current Status) (Status, error) {
	stage, err := d.Stage()
	if err != nil {
		return StatusUnknown, err
	}

	if current != stage.InProgress {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be completed by %s, expected %s", current, d, stage.InProgress),
		)
	}

	return stage.Next, nil
}
