package cmd

import (
	"strconv"
	"time"

	"production/internal/adapters/out/postgres"
	"production/internal/adapters/out/redisstore"
	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/ports"
	"production/internal/pkg/auth"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	hasher   auth.PasswordHasher
	tokens   auth.TokenStrategy
	sessions ports.SessionStateStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	sessions, err := redisstore.NewSessionStateStore(redisstore.NewClient(config.RedisAddr))
	if err != nil {
		panic(err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(parseIntOr(config.BcryptCost, 0)),
		tokens: auth.NewHMACStrategy(config.TokenSecret, auth.Options{
			TTL: time.Duration(parseIntOr(config.TokenTTL, 0)) * time.Hour,
		}),
		sessions: sessions,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartStageCommandHandler() commands.StartStageCommandHandler {
	return commands.NewStartStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteStageCommandHandler() commands.CompleteStageCommandHandler {
	return commands.NewCompleteStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmShipmentCommandHandler() commands.ConfirmShipmentCommandHandler {
	return commands.NewConfirmShipmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	return commands.NewSetStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDepartmentQueueQueryHandler() queries.GetDepartmentQueueQueryHandler {
	return queries.NewGetDepartmentQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportQueryHandler() queries.GetReportQueryHandler {
	return queries.NewGetReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountByLoginQueryHandler() queries.GetAccountByLoginQueryHandler {
	return queries.NewGetAccountByLoginQueryHandler(c.gormDB)
}

func (c *CompositionRoot) PasswordHasher() auth.PasswordHasher { return c.hasher }

func (c *CompositionRoot) TokenStrategy() auth.TokenStrategy { return c.tokens }

func (c *CompositionRoot) SessionStateStore() ports.SessionStateStore { return c.sessions }

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOrderProductUoWFactory func() commands.OrderProductUoW

func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}
