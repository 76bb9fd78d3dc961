package cmd

import (
	"log/slog"

	adapterhttp "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/disk"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	fileStore     *disk.Store
	authenticator ports.AdminAuthenticator
	logger        *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	fileStore *disk.Store,
	authenticator ports.AdminAuthenticator,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		fileStore:     fileStore,
		authenticator: authenticator,
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.CreateOrderRepository(), c.fileStore, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.CreateOrderRepository())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.CreateOrderRepository(), c.fileStore, c.logger)
}

func (c *CompositionRoot) CreateSweepOrphanFilesCommandHandler() commands.SweepOrphanFilesCommandHandler {
	return commands.NewSweepOrphanFilesCommandHandler(c.CreateOrderRepository(), c.fileStore, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDownloadFileQueryHandler() queries.DownloadFileQueryHandler {
	return queries.NewDownloadFileQueryHandler(c.gormDB, c.fileStore)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetDashboardStatsQueryHandler(),
		c.CreateDownloadFileQueryHandler(),
		c.authenticator,
		c.fileStore.MaxFilesPerRequest(),
		c.config.IsDevelopment(),
		c.logger,
	)
}
