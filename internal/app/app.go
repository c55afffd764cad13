package app

import (
	"context"
	"fmt"
	"net/http"

	"error-demo/internal/app/middleware"
	"error-demo/internal/config"
	"error-demo/internal/domain"
	"error-demo/internal/handler"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server wraps http.Server for the application
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewRouter builds the HTTP route table. The demo endpoints are registered
// both at the root and under the /app prefix; bare /app is an alias for the
// index endpoint.
func NewRouter(
	log *zap.Logger,
	appHandler *handler.AppHandler,
	healthHandler *handler.HealthHandler,
	docsHandler *handler.DocsHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	registerDemo := func(r *mux.Router) {
		r.HandleFunc("/index", appHandler.Index).Methods(http.MethodGet)
		r.HandleFunc("/number", appHandler.Number).Methods(http.MethodGet)
		r.HandleFunc("/show/{id}", appHandler.Show).Methods(http.MethodGet)
		r.HandleFunc("/users", appHandler.Users).Methods(http.MethodGet)
	}

	registerDemo(router)
	router.HandleFunc("/app", appHandler.Index).Methods(http.MethodGet)
	registerDemo(router.PathPrefix("/app").Subrouter())

	// Operational routes
	router.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)
	router.Handle("/metrics", middleware.MetricsHandler()).Methods(http.MethodGet)
	router.HandleFunc("/docs", docsHandler.ServeSwaggerUI).Methods(http.MethodGet)
	router.HandleFunc("/openapi.yml", docsHandler.ServeOpenAPI).Methods(http.MethodGet)

	// Unmatched paths go through the same error contract as everything else.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := domain.Categorize(domain.ErrRouteNotFound,
			fmt.Errorf("no handler found for %s %s", r.Method, r.URL.Path))
		middleware.WriteErrorResponse(w, err, log)
	})

	return router
}

// NewServer creates a new HTTP server with configured routes and middleware
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	appHandler *handler.AppHandler,
	healthHandler *handler.HealthHandler,
	docsHandler *handler.DocsHandler,
) *Server {
	router := NewRouter(log, appHandler, healthHandler, docsHandler)

	// Apply middleware chain: Recovery → RequestID → Logging. The chain
	// wraps the router itself so unmatched routes are covered too.
	var h http.Handler = router
	h = middleware.Logging(log)(h)
	h = middleware.RequestID(log)(h)
	h = middleware.Recovery(log)(h)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		logger:     log,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
