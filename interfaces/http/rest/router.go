package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"cortex-backend/application/ports"
	"cortex-backend/application/services"
	"cortex-backend/infrastructure/config"
	"cortex-backend/interfaces/http/rest/handlers"
	"cortex-backend/interfaces/http/rest/middleware"
	"cortex-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	tokens    *auth.TokenService
	creds     ports.CredentialStore
	connector ports.TenantConnector
	authSvc   *services.AuthService
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenService,
	creds ports.CredentialStore,
	connector ports.TenantConnector,
	authSvc *services.AuthService,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		tokens:    tokens,
		creds:     creds,
		connector: connector,
		authSvc:   authSvc,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Get("/", rt.root)

	cookie := handlers.CookiePolicy{
		Domain: rt.cfg.CookieDomain,
		TTL:    rt.cfg.TokenTTL(),
	}
	authHandler := handlers.NewAuthHandler(rt.authSvc, cookie, rt.logger)
	sessionAuth := middleware.SessionAuth(rt.tokens, rt.creds, rt.connector, rt.logger)

	// Authentication endpoints
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)
			r.Post("/logout", authHandler.Logout)
			r.Get("/token", authHandler.CheckToken)
		})
	})

	// Graph endpoints
	router.Route("/graphs", func(r chi.Router) {
		r.Use(sessionAuth)
		graphHandler := handlers.NewGraphHandler(rt.logger)
		r.Get("/", graphHandler.ListGraphs)
		r.Get("/{graphID}", graphHandler.GetGraph)
	})

	// Object endpoints over the tenant-scoped handle
	router.Route("/objects", func(r chi.Router) {
		r.Use(sessionAuth)

		collectionHandler := handlers.NewCollectionHandler(rt.logger)
		nodeHandler := handlers.NewNodeHandler(rt.logger)
		edgeHandler := handlers.NewEdgeHandler(rt.logger)

		r.Get("/databases", collectionHandler.ListDatabases)
		r.Get("/edges", edgeHandler.ListEdges)

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", collectionHandler.ListCollections)

			r.Route("/nodes", func(r chi.Router) {
				r.Post("/", nodeHandler.CreateNode)
				r.Get("/{nodeKey}", nodeHandler.GetNode)
			})

			r.Get("/{collectionID}", collectionHandler.GetCollectionDocuments)
			r.Get("/{collectionID}/info", collectionHandler.GetCollectionInfo)
		})
	})

	return router
}

// allowedOrigins builds the CORS origin list from the configured origin.
func (rt *Router) allowedOrigins() []string {
	origin := rt.cfg.CORSAllowedOrigin
	return []string{
		fmt.Sprintf("https://%s", origin),
		fmt.Sprintf("https://%s/login", origin),
		fmt.Sprintf("https://%s/token", origin),
		fmt.Sprintf("https://%s/register", origin),
	}
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

// root rejects the bare root path.
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusGone)
	w.Write([]byte("<h1>Root not callable.</h1>"))
}
