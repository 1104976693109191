package cmd

import (
	"log/slog"
	"time"

	httpin "lastmile/internal/adapters/in/http"
	"lastmile/internal/adapters/out/memory"
	"lastmile/internal/adapters/out/security"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	policy     services.AccessPolicy
	hasher     *security.BcryptHasher
	tokens     *security.TokenService
}

// NewCompositionRoot builds the store and the security adapters and loads
// the configured seed data.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := security.NewTokenService([]byte(config.JWTSecret), config.JWTTTL, config.JWTIssuer)
	if err != nil {
		return CompositionRoot{}, err
	}

	store := memory.NewStore()
	root := CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		policy:     services.NewAccessPolicy(),
		hasher:     security.NewBcryptHasher(config.BcryptCost),
		tokens:     tokens,
	}

	if err = root.seed(); err != nil {
		return CompositionRoot{}, err
	}
	return root, nil
}

func (c *CompositionRoot) seed() error {
	var (
		samples []*shipment.Shipment
		users   []*user.User
		err     error
	)

	if c.config.SeedSampleData {
		if samples, err = memory.SampleShipments(); err != nil {
			return err
		}
	}
	if c.config.SeedUsers {
		if users, err = memory.DefaultUsers(c.hasher, time.Now().UTC()); err != nil {
			return err
		}
	}

	if err = c.store.Seed(samples, users); err != nil {
		return err
	}

	c.logger.Info("store seeded",
		"component", "composition_root",
		"shipments", len(samples),
		"users", len(users),
	)
	return nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	return commands.NewAddTrackingEventCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.store.Shipments(), c.policy)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.store.Shipments(), c.policy)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.store.Shipments(), c.policy)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.store.Shipments(), c.policy)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.store.Users(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateResolvePrincipalQueryHandler() queries.ResolvePrincipalQueryHandler {
	return queries.NewResolvePrincipalQueryHandler(c.tokens, c.store.Users())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.ServiceInfo{Name: c.config.AppName, Version: c.config.AppVersion},
		httpin.Handlers{
			CreateShipment:     c.CreateCreateShipmentCommandHandler(),
			UpdateShipment:     c.CreateUpdateShipmentCommandHandler(),
			DeleteShipment:     c.CreateDeleteShipmentCommandHandler(),
			AddTrackingEvent:   c.CreateAddTrackingEventCommandHandler(),
			RegisterUser:       c.CreateRegisterUserCommandHandler(),
			ListShipments:      c.CreateListShipmentsQueryHandler(),
			GetShipment:        c.CreateGetShipmentQueryHandler(),
			GetTrackingHistory: c.CreateGetTrackingHistoryQueryHandler(),
			GetStatistics:      c.CreateGetStatisticsQueryHandler(),
			AuthenticateUser:   c.CreateAuthenticateUserQueryHandler(),
		},
	)
}

// CreateRouter returns the echo instance serving the whole HTTP interface.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(
		c.CreateHTTPServer(),
		c.CreateResolvePrincipalQueryHandler(),
		c.logger,
		c.config.CORSOrigins,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatisticsQueryHandler(), c.config.StatsReportSchedule, c.logger)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
