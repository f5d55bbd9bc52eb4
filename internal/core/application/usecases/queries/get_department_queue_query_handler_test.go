package queries_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDepartmentQueueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDepartmentQueueQueryHandler
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDepartmentQueueQueryHandler(db)
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyQueue() {
	query, err := queries.NewGetDepartmentQueueQuery(order.DepartmentSetting)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Pending)
	suite.NotNil(result.InProgress)
	suite.Empty(result.Pending)
	suite.Empty(result.InProgress)
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) TestHandle_SplitsQueueOldestFirst() {
	now := time.Now().UTC()

	// Two pending setting orders, out of insertion order by date.
	seedOrder(&suite.Suite, suite.db, "ERF-1002", "Kaos Polos Hitam", "WhatsApp", mustDate(&suite.Suite, 2024, time.June, 8), order.TypePreOrder)
	seedOrder(&suite.Suite, suite.db, "ERF-1001", "Jersey Racing Red", "Shopee Erfo.id", mustDate(&suite.Suite, 2024, time.June, 2), order.TypePreOrder)

	// One order already on the setting desk.
	inProgress := newSeedOrder(&suite.Suite, "ERF-1003", "Jersey Futsal Biru", "Shopee Safashion", mustDate(&suite.Suite, 2024, time.June, 5), order.TypePreOrder)
	suite.Require().NoError(inProgress.StartStage(order.DepartmentSetting, "Budi Setting", now))
	saveSeedOrder(&suite.Suite, suite.db, inProgress)

	// Orders in other departments never show up in the setting queue.
	stock := seedOrder(&suite.Suite, suite.db, "ERF-1004", "Kaos Polos Putih", "Offline", mustDate(&suite.Suite, 2024, time.June, 1), order.TypeStock)
	_ = stock

	query, err := queries.NewGetDepartmentQueueQuery(order.DepartmentSetting)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Pending, 2)
	suite.Equal("ERF-1001", result.Pending[0].ExternalID)
	suite.Equal("ERF-1002", result.Pending[1].ExternalID)
	suite.Equal("PENDING_SETTING", result.Pending[0].Status)

	suite.Require().Len(result.InProgress, 1)
	suite.Equal("ERF-1003", result.InProgress[0].ExternalID)
	suite.Equal("IN_SETTING", result.InProgress[0].Status)
	suite.Equal("Proses Setting", result.InProgress[0].StatusLabel)
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) TestHandle_PackingQueueIncludesStockOrders() {
	seedOrder(&suite.Suite, suite.db, "ERF-1001", "Kaos Polos Putih", "Offline", mustDate(&suite.Suite, 2024, time.June, 1), order.TypeStock)

	query, err := queries.NewGetDepartmentQueueQuery(order.DepartmentPacking)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Pending, 1)
	suite.Equal("ERF-1001", result.Pending[0].ExternalID)
	suite.Equal("PENDING_PACKING", result.Pending[0].Status)
	suite.Empty(result.InProgress)
}

func (suite *GetDepartmentQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetDepartmentQueueQuery{})
	suite.Require().Error(err)
}

func TestGetDepartmentQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDepartmentQueueQueryHandlerTestSuite))
}
