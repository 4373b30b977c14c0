package cmd

import (
	"log/slog"

	httpadapter "orderintake/internal/adapters/in/http"
	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/core/domain/model/rule"
	"orderintake/internal/core/domain/services"
	"orderintake/internal/jobs"
	"orderintake/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	allocator  services.CourierAllocator
	rules      rule.Table
	policy     order.TransitionPolicy
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, rules rule.Table, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := config.TransitionPolicy()
	if err != nil {
		return CompositionRoot{}, err
	}

	if err = rules.Validate(); err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		allocator:  services.NewCourierAllocator(rules),
		rules:      rules,
		policy:     policy,
		metrics:    metrics.New(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierRulesQueryHandler() queries.GetCourierRulesQueryHandler {
	return queries.NewGetCourierRulesQueryHandler(c.rules)
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderStatusSummaryQueryHandler(),
		c.metrics,
		c.config.StatsSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	doc, err := httpadapter.LoadOpenAPI()
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetCourierRulesQueryHandler(),
		c.metrics,
		c.logger,
	)

	e, err := httpadapter.NewRouter(server, doc, c.metrics, c.logger)
	if err != nil {
		return nil, err
	}
	e.Logger.SetLevel(c.config.EchoLogLevel())

	return e, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
