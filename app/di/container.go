package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"school-admin-service/app/config"
	"school-admin-service/app/driver/kratos"
	"school-admin-service/app/driver/postgres"
	"school-admin-service/app/gateway"
	"school-admin-service/app/port"
	"school-admin-service/app/rest"
	"school-admin-service/app/rest/handlers"
	"school-admin-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	ProvisionUsecase port.ProvisionUsecase
	AuthzUsecase     port.AuthzUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)
	teacherRepository := postgres.NewTeacherRepository(container.DB.Pool(), logger)
	studentRepository := postgres.NewStudentRepository(container.DB.Pool(), logger)

	// Initialize gateways
	identityAdapter := kratos.NewIdentityAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(identityAdapter, logger)

	// Initialize usecases
	container.ProvisionUsecase = usecase.NewProvisionUseCase(
		container.IdentityGateway,
		profileRepository,
		teacherRepository,
		studentRepository,
		logger,
	)
	container.AuthzUsecase = usecase.NewAuthzUseCase(profileRepository, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:           c.Logger,
		ProvisionUsecase: c.ProvisionUsecase,
		AuthzUsecase:     c.AuthzUsecase,
		IdentityGateway:  c.IdentityGateway,
		HealthCheckers: map[string]handlers.HealthChecker{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
		},
		EnableDebug:   c.Config.LogLevel == "debug",
		EnableMetrics: c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	// Kratos client holds no connections that need explicit cleanup

	c.Logger.Info("Container closed successfully")
	return nil
}
