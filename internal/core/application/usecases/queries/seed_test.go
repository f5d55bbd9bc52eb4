package queries_test

import (
	"context"
	"time"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// noopAggregateTracker satisfies the repository's tracker dependency; query
// tests seed rows outside any unit of work.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

func mustDate(s *suite.Suite, year int, month time.Month, day int) kernel.Date {
	d, err := kernel.NewDate(year, month, day)
	s.Require().NoError(err)
	return d
}

func newSeedOrder(
	s *suite.Suite,
	externalID string,
	productName string,
	marketplace string,
	orderDate kernel.Date,
	orderType order.Type,
) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		externalID,
		kernel.NewUUID().String(),
		productName,
		"XL",
		2,
		marketplace,
		orderDate,
		orderType,
		"Sari Admin",
		time.Now().UTC(),
	)
	s.Require().NoError(err)
	return o
}

func saveSeedOrder(s *suite.Suite, db *gorm.DB, o *order.Order) {
	repo := orderrepo.NewGormOrderRepository(db, noopAggregateTracker{})
	s.Require().NoError(repo.Add(context.Background(), o))
}

func seedOrder(
	s *suite.Suite,
	db *gorm.DB,
	externalID string,
	productName string,
	marketplace string,
	orderDate kernel.Date,
	orderType order.Type,
) *order.Order {
	o := newSeedOrder(s, externalID, productName, marketplace, orderDate, orderType)
	saveSeedOrder(s, db, o)
	return o
}
