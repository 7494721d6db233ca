package cmd

import (
	"log/slog"

	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/accountrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency for read paths
// that never join a unit of work.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewCommissionCalculator(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, services.NewCommissionCalculator(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAdminReportQueryHandler() queries.AdminReportQueryHandler {
	return queries.NewAdminReportQueryHandler(c.orderReader(), c.accountReader())
}

func (c *CompositionRoot) CreateDeliveryReportQueryHandler() queries.DeliveryReportQueryHandler {
	return queries.NewDeliveryReportQueryHandler(c.orderReader(), c.accountReader())
}

func (c *CompositionRoot) CreateShopReportQueryHandler() queries.ShopReportQueryHandler {
	return queries.NewShopReportQueryHandler(c.orderReader(), c.accountReader())
}

func (c *CompositionRoot) CreateComprehensiveReportQueryHandler() queries.ComprehensiveReportQueryHandler {
	return queries.NewComprehensiveReportQueryHandler(
		c.CreateAdminReportQueryHandler(),
		c.CreateDeliveryReportQueryHandler(),
		c.CreateShopReportQueryHandler(),
		c.accountReader(),
		c.logger,
	)
}

func (c *CompositionRoot) orderReader() queries.OrderReader {
	return orderrepo.NewGormOrderRepository(c.gormDB, &noopTracker{})
}

func (c *CompositionRoot) accountReader() queries.AccountReader {
	return accountrepo.NewGormAccountStore(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
