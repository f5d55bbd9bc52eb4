package queries

import (
	"errors"
	"sort"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var (
	ErrGetReportQueryIsNotConstructed = errors.New(
		"GetReportQuery must be created via NewGetReportQuery constructor",
	)
	ErrReportPeriodIsInverted = errors.New("report period end precedes its start")
)

// GetReportQuery retrieves sales totals for a date range, inclusive on both
// ends, broken down by marketplace.
type GetReportQuery struct {
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

// NewGetReportQuery creates a report query for [from, to].
func NewGetReportQuery(from, to kernel.Date) (GetReportQuery, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return GetReportQuery{}, err
	}
	if to.Before(from) {
		return GetReportQuery{}, ErrReportPeriodIsInverted
	}
	return GetReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

// From returns the first day of the period.
func (q GetReportQuery) From() kernel.Date { return q.from }

// To returns the last day of the period.
func (q GetReportQuery) To() kernel.Date { return q.to }

// MarketplaceSummary is one sales channel's totals within the period. Done
// counts completed orders; Pending counts orders still in the pipeline,
// canceled and returned ones excluded.
type MarketplaceSummary struct {
	Marketplace string
	Orders      int
	Pieces      int
	Done        int
	Pending     int
}

// GetReportQueryResponse is the period report read model. Pieces counts
// garments, not order lines; the production/stock split follows the order
// type.
type GetReportQueryResponse struct {
	From             string
	To               string
	TotalOrders      int
	TotalPieces      int
	ProductionPieces int
	StockPieces      int
	Completed        int
	Canceled         int
	Returned         int
	Marketplaces     []MarketplaceSummary
}

type reportRow struct {
	Marketplace string
	Status      string
	Type        string
	Orders      int
	Pieces      int
}

// buildReport folds grouped rows into the report read model. Marketplaces
// are sorted by order count, busiest first.
func buildReport(from, to kernel.Date, rows []reportRow) GetReportQueryResponse {
	resp := GetReportQueryResponse{
		From:         from.String(),
		To:           to.String(),
		Marketplaces: make([]MarketplaceSummary, 0),
	}

	byMarketplace := make(map[string]*MarketplaceSummary)
	for _, row := range rows {
		resp.TotalOrders += row.Orders
		resp.TotalPieces += row.Pieces

		if order.Type(row.Type) == order.TypeStock {
			resp.StockPieces += row.Pieces
		} else {
			resp.ProductionPieces += row.Pieces
		}

		summary, ok := byMarketplace[row.Marketplace]
		if !ok {
			summary = &MarketplaceSummary{Marketplace: row.Marketplace}
			byMarketplace[row.Marketplace] = summary
		}
		summary.Orders += row.Orders
		summary.Pieces += row.Pieces

		switch order.Status(row.Status) {
		case order.StatusCompleted:
			resp.Completed += row.Orders
			summary.Done += row.Orders
		case order.StatusCanceled:
			resp.Canceled += row.Orders
		case order.StatusReturned:
			resp.Returned += row.Orders
		default:
			summary.Pending += row.Orders
		}
	}

	for _, summary := range byMarketplace {
		resp.Marketplaces = append(resp.Marketplaces, *summary)
	}
	sort.Slice(resp.Marketplaces, func(i, j int) bool {
		if resp.Marketplaces[i].Orders != resp.Marketplaces[j].Orders {
			return resp.Marketplaces[i].Orders > resp.Marketplaces[j].Orders
		}
		return resp.Marketplaces[i].Marketplace < resp.Marketplaces[j].Marketplace
	})

	return resp
}
