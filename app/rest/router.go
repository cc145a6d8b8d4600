package rest

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
	"school-admin-service/app/rest/handlers"
	custommw "school-admin-service/app/rest/middleware"
	"school-admin-service/app/utils/metrics"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	ProvisionUsecase port.ProvisionUsecase
	AuthzUsecase     port.AuthzUsecase
	IdentityGateway  port.IdentityGateway
	HealthCheckers   map[string]handlers.HealthChecker
	EnableDebug      bool
	EnableMetrics    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	provisionHandler := handlers.NewProvisionHandler(config.ProvisionUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthCheckers)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.IdentityGateway, config.AuthzUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	if config.EnableMetrics {
		e.Use(requestMetrics)
	}

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Admin endpoints require an authenticated session; the role gate per
	// route decides who may provision what.
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth())

	admin.POST("/teachers", provisionHandler.CreateTeacher,
		authMiddleware.RequireRoles(domain.RoleSuperAdmin))
	admin.GET("/teachers/:teacherId", provisionHandler.GetTeacher,
		authMiddleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleTeacher))

	admin.POST("/students", provisionHandler.CreateStudentWithParent,
		authMiddleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleTeacher))
	admin.GET("/students/:studentId", provisionHandler.GetStudent,
		authMiddleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleTeacher))

	// Email lookup only needs an authenticated session
	admin.GET("/users/email", provisionHandler.GetUserEmail)
	admin.DELETE("/users/:userId", provisionHandler.DeactivateUser,
		authMiddleware.RequireRoles(domain.RoleSuperAdmin))

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}

// requestMetrics counts handled requests by method, route and status. The
// route template is used instead of the raw URI to keep label cardinality low.
func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(c.Response().Status),
		).Inc()

		return err
	}
}
