package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/researchnexus/nexus/internal/api/handler"
	"github.com/researchnexus/nexus/internal/api/middleware"
	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/infrastructure/http/handlers"
)

// Deps is everything the router needs, already wired by the caller.
type Deps struct {
	Sessions  ports.SessionRegistry
	Tokens    ports.TokenIssuer
	Catalog   ports.CatalogService
	Dashboard ports.DashboardService
	Chat      ports.ChatService
	// Readiness probes keyed by backend name ("mongodb", "redis").
	Readiness map[string]handlers.Pinger
	JWTSecret string
	Log       zerolog.Logger
	// Metrics overrides the Prometheus registry for HTTP metrics. Nil uses
	// the default registry, which also holds the service metrics.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Metrics != nil {
		registerer, gatherer = d.Metrics, d.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "nexus",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(d.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sessionHandler := handler.NewSessionHandler(d.Sessions, d.Tokens, d.Log)
	researchHandler := handler.NewResearchHandler(d.Catalog)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	chatHandler := handler.NewChatHandler(d.Chat)

	v1 := e.Group("/v1")

	// --- Profile-scoped routes ---
	profiled := v1.Group("", middleware.Profile())
	profiled.GET("/session", sessionHandler.Get)
	profiled.DELETE("/session", sessionHandler.Logout)
	profiled.POST("/session/login", sessionHandler.Login)
	profiled.POST("/session/signup", sessionHandler.Signup)
	profiled.GET("/chat", chatHandler.Transcript)
	profiled.POST("/chat", chatHandler.Send)
	profiled.GET("/dashboard", dashboardHandler.Get,
		middleware.Auth(d.JWTSecret),
		middleware.ActiveSession(d.Sessions),
		middleware.RBAC(domain.Roles()...),
	)

	// --- Public catalog ---
	v1.GET("/research", researchHandler.List)
	v1.GET("/research/facets", researchHandler.Facets)
	v1.GET("/research/:id", researchHandler.Get)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
