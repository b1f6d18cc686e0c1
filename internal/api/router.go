package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/driverportal/portal-api/docs"
	"github.com/driverportal/portal-api/internal/api/handler"
	"github.com/driverportal/portal-api/internal/api/middleware"
	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

// Dependencies are the services the HTTP surface is built on.
type Dependencies struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Companies ports.CompanyService
	Drivers   ports.DriverService
	Policy    ports.AccessPolicy
	Log       zerolog.Logger

	AllowedOrigins []string
	HealthChecks   []handler.DependencyCheck
	// Registerer receives the HTTP request metrics. Defaults to the
	// process-wide Prometheus registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal",
		Registerer: registerer,
	}))

	// --- Public routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks...)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	api := e.Group("/api", middleware.Authenticate(deps.Auth))
	guard := func(op domain.Operation) echo.MiddlewareFunc {
		return middleware.RBAC(deps.Policy, op)
	}

	companyHandler := handler.NewCompanyHandler(deps.Companies)
	companies := api.Group("/companies")
	companies.GET("", companyHandler.List, guard(domain.OpCompanyRead))
	companies.GET("/:id", companyHandler.Get, guard(domain.OpCompanyRead))
	companies.POST("/search", companyHandler.Search, guard(domain.OpCompanySearch))
	companies.POST("", companyHandler.Create, guard(domain.OpCompanyCreate))
	companies.PUT("/:id", companyHandler.Update, guard(domain.OpCompanyUpdate))
	companies.DELETE("/:id", companyHandler.Delete, guard(domain.OpCompanyDelete))

	driverHandler := handler.NewDriverHandler(deps.Drivers)
	drivers := api.Group("/drivers")
	drivers.GET("", driverHandler.List, guard(domain.OpDriverRead))
	drivers.GET("/:id", driverHandler.Get, guard(domain.OpDriverRead))
	drivers.POST("/search", driverHandler.Search, guard(domain.OpDriverSearch))
	drivers.POST("", driverHandler.Create, guard(domain.OpDriverCreate))
	drivers.PUT("/:id", driverHandler.Update, guard(domain.OpDriverUpdate))
	drivers.DELETE("/:id", driverHandler.Delete, guard(domain.OpDriverDelete))

	userHandler := handler.NewUserHandler(deps.Users)
	users := api.Group("/users")
	users.GET("", userHandler.List, guard(domain.OpUserList))
	users.DELETE("/:id", userHandler.Delete, guard(domain.OpUserDelete))
	users.PUT("/:id/role", userHandler.UpdateRole, guard(domain.OpUserUpdateRole))

	return e
}
