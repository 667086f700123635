package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/events"
	"freight/internal/adapters/out/hashing"
	"freight/internal/adapters/out/memory"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	reads      ports.UnitOfWork
	hasher     ports.PasswordHasher
	engine     services.MatchingEngine
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases over gormDB, or over an in-memory
// store when STORAGE=memory (gormDB is nil then).
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	var uowFactory ports.UnitOfWorkFactory
	if cfg.Storage == StorageMemory {
		uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger)
	} else {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
	}

	return CompositionRoot{
		cfg:        cfg,
		uowFactory: uowFactory,
		// Reads run outside transactions, one shared unit of work is enough.
		reads:  uowFactory.Create(),
		hasher: NewPasswordHasher(cfg),
		engine: services.NewMatchingEngine(services.NewPricingEngine(), NewTimeEstimator(cfg)),
		clock:  kernel.SystemClock{},
		logger: logger,
	}
}

func NewTimeEstimator(cfg Config) services.TimeEstimator {
	if cfg.SolutionTimeHours > 0 {
		return services.FixedTimeEstimator{Hours: cfg.SolutionTimeHours}
	}
	seed := cfg.SolutionTimeSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return services.NewRandomTimeEstimator(seed)
}

func NewPasswordHasher(cfg Config) ports.PasswordHasher {
	if cfg.Hasher == HasherArgon2 {
		return hashing.NewArgon2Hasher(hashing.DefaultArgon2Params)
	}
	return hashing.NewBcryptHasher(cfg.PasswordBcryptCost)
}

// Publisher is an event publisher holding a broker connection.
type Publisher interface {
	ports.EventPublisher
	Close() error
}

func NewEventPublisher(cfg Config, logger *slog.Logger) (Publisher, error) {
	switch cfg.Events {
	case EventsKafka:
		return events.NewKafkaPublisher(cfg.KafkaHost, cfg.KafkaOrderTopic), nil
	case EventsRabbitMQ:
		p, err := events.DialRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQOrderQueue)
		if err != nil {
			return nil, fmt.Errorf("rabbitmq publisher: %w", err)
		}
		return p, nil
	default:
		return events.NewLogPublisher(logger), nil
	}
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f, c.hasher, c.clock)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGenerateSolutionsCommandHandler() commands.GenerateSolutionsCommandHandler {
	return commands.NewGenerateSolutionsCommandHandler(c.fullUoWFactory(), c.engine, c.clock, c.cfg.MatchingDriverLimit)
}

func (c *CompositionRoot) CreateConfirmSolutionCommandHandler() commands.ConfirmSolutionCommandHandler {
	return commands.NewConfirmSolutionCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmAgreementCommandHandler() commands.ConfirmAgreementCommandHandler {
	return commands.NewConfirmAgreementCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReleaseStaleCandidatesCommandHandler() commands.ReleaseStaleCandidatesCommandHandler {
	return commands.NewReleaseStaleCandidatesCommandHandler(c.fullUoWFactory(), c.cfg.ReleaseBatch)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.reads.CustomerRepository(), c.hasher)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.reads.OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderSolutionsQueryHandler() queries.GetOrderSolutionsQueryHandler {
	return queries.NewGetOrderSolutionsQueryHandler(
		c.reads.OrderRepository(), c.reads.SolutionRepository(), c.reads.DriverRepository())
}

func (c *CompositionRoot) CreateGetAgreementTextQueryHandler() queries.GetAgreementTextQueryHandler {
	return queries.NewGetAgreementTextQueryHandler(c.reads.OrderRepository(), c.reads.CustomerRepository())
}

func (c *CompositionRoot) CreateGetPaymentDetailsQueryHandler() queries.GetPaymentDetailsQueryHandler {
	return queries.NewGetPaymentDetailsQueryHandler(c.reads.OrderRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			SignUp:            c.CreateSignUpCommandHandler(),
			RegisterDriver:    c.CreateRegisterDriverCommandHandler(),
			CreateOrder:       c.CreateCreateOrderCommandHandler(),
			GenerateSolutions: c.CreateGenerateSolutionsCommandHandler(),
			ConfirmSolution:   c.CreateConfirmSolutionCommandHandler(),
			ConfirmAgreement:  c.CreateConfirmAgreementCommandHandler(),
			ConfirmPayment:    c.CreateConfirmPaymentCommandHandler(),
			CompleteOrder:     c.CreateCompleteOrderCommandHandler(),
		},
		httpin.QueryHandlers{
			Login:          c.CreateLoginQueryHandler(),
			CustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
			OrderSolutions: c.CreateGetOrderSolutionsQueryHandler(),
			AgreementText:  c.CreateGetAgreementTextQueryHandler(),
			PaymentDetails: c.CreateGetPaymentDetailsQueryHandler(),
		},
		httpin.NewTokenIssuer(c.cfg.JWTSecret, c.cfg.JWTTokenTTL, c.clock),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateReleaseStaleCandidatesCommandHandler()
	return jobs.NewJobManager(&handler, c.cfg.ReleaseSchedule, c.cfg.JobTimeout, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
