package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"orgdir/infrastructure/di"
	"orgdir/interfaces/http/rest/handlers"
	"orgdir/interfaces/http/rest/middleware"
	pkgerrors "orgdir/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	cfg := rt.container.Config
	errorHandler := pkgerrors.NewErrorHandler(rt.logger, !cfg.IsProduction())

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.container.Metrics))
	}

	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(
			rt.container.Metrics.GetRegistry(),
			promhttp.HandlerOpts{},
		))
	}

	userHandler := handlers.NewUserHandler(rt.container.Mediator, rt.container.TokenManager, errorHandler, rt.logger)

	// Public authentication endpoints
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
	})

	authenticate := middleware.Authenticate(middleware.AuthConfig{
		TokenManager:          rt.container.TokenManager,
		Mediator:              rt.container.Mediator,
		Logger:                rt.logger,
		IPRequestsPerMinute:   cfg.IPRequestsPerMinute,
		UserRequestsPerMinute: cfg.UserRequestsPerMinute,
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/activities", func(r chi.Router) {
			activityHandler := handlers.NewActivityHandler(rt.container.Mediator, errorHandler, rt.logger)
			r.Post("/", activityHandler.CreateActivity)
			r.Get("/", activityHandler.ListActivities)
			r.Get("/{activityID}", activityHandler.GetActivity)
		})

		r.Route("/buildings", func(r chi.Router) {
			buildingHandler := handlers.NewBuildingHandler(rt.container.Mediator, errorHandler, rt.logger)
			r.Post("/", buildingHandler.CreateBuilding)
			r.Get("/by-address", buildingHandler.GetBuildingByAddress)
			r.Get("/{buildingID}", buildingHandler.GetBuilding)
		})

		r.Route("/organizations", func(r chi.Router) {
			organizationHandler := handlers.NewOrganizationHandler(rt.container.Mediator, errorHandler, rt.logger)
			r.Post("/", organizationHandler.CreateOrganization)
			r.Get("/search/by-name", organizationHandler.SearchByName)
			r.Get("/search/by-address", organizationHandler.SearchByAddress)
			r.Get("/search/by-activity", organizationHandler.SearchByActivity)
			r.Get("/search/by-radius", organizationHandler.SearchByRadius)
			r.Get("/search/by-rectangle", organizationHandler.SearchByRectangle)
			r.Get("/{organizationID}", organizationHandler.GetOrganization)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/{userID}", userHandler.GetUser)
			r.Post("/{userID}/api-keys", userHandler.CreateAPIKey)
		})

		r.Delete("/api-keys/{key}", userHandler.BanAPIKey)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
