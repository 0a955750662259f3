package cmd

import (
	"log/slog"

	"orderbot/internal/adapters/out/memory/sessionstore"
	"orderbot/internal/adapters/out/postgres"
	"orderbot/internal/adapters/out/postgres/orderrepo"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/ports"
	"orderbot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	store      *sessionstore.Store
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. publisher may be nil, in which
// case placed orders are not announced.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      sessionstore.New(configs.SessionTTL),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddToOrderCommandHandler() commands.AddToOrderCommandHandler {
	return commands.NewAddToOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRemoveFromOrderCommandHandler() commands.RemoveFromOrderCommandHandler {
	return commands.NewRemoveFromOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.store, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateEvictExpiredSessionsCommandHandler() commands.EvictExpiredSessionsCommandHandler {
	return commands.NewEvictExpiredSessionsCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateEvictExpiredSessionsCommandHandler(),
		c.configs.SessionEvictionSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
