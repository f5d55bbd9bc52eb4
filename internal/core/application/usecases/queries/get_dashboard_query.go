package queries

import (
	"errors"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the management dashboard: order totals, the
// load on each department, and the overdue count.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a parameterless dashboard query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// DepartmentLoad is one department's slice of the pipeline.
type DepartmentLoad struct {
	Department string
	Pending    int
	InProgress int
}

// GetDashboardQueryResponse is the dashboard read model.
type GetDashboardQueryResponse struct {
	TotalOrders  int
	InProduction int
	ReadyToShip  int
	Completed    int
	Canceled     int
	Returned     int
	Overdue      int
	Departments  []DepartmentLoad
}

// buildDashboard folds per-status counts into the dashboard read model.
// Kept pure so the shape of the dashboard is testable without a database.
func buildDashboard(statusCounts map[string]int, overdue int) GetDashboardQueryResponse {
	resp := GetDashboardQueryResponse{
		Overdue:     overdue,
		Departments: make([]DepartmentLoad, 0, len(order.AllDepartments())),
	}

	for status, count := range statusCounts {
		resp.TotalOrders += count
		switch order.Status(status) {
		case order.StatusReadyToShip:
			resp.ReadyToShip += count
		case order.StatusCompleted:
			resp.Completed += count
		case order.StatusCanceled:
			resp.Canceled += count
		case order.StatusReturned:
			resp.Returned += count
		default:
			resp.InProduction += count
		}
	}

	for _, d := range order.AllDepartments() {
		stage, err := d.Stage()
		if err != nil {
			continue
		}
		resp.Departments = append(resp.Departments, DepartmentLoad{
			Department: d.String(),
			Pending:    statusCounts[stage.Pending.String()],
			InProgress: statusCounts[stage.InProgress.String()],
		})
	}

	return resp
}
