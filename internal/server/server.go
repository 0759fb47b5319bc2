package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/simhub/apiserver/config"
	"github.com/simhub/apiserver/internal/handlers"
	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/internal/services"
	"github.com/simhub/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	kv         *kvstore.KV
}

// Services bundles the use-case layer consumed by the router.
type Services struct {
	Jobs     *services.JobService
	Experts  *services.ExpertService
	Software *services.SoftwareService
	Hardware *services.HardwareService
	Sessions *services.SessionService
}

// New constructs a Server: opens the key-value store, bootstraps every
// collection (seeding on first run), and wires the router.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	backend, err := kvstore.OpenSQLite(ctx, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	kv := kvstore.New(backend)

	if err := kv.Ensure(ctx); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("ensure store schema: %w", err)
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		_ = kv.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	svcs, err := buildServices(ctx, kv)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	router := NewRouter(svcs, jwtSecret)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		kv:         kv,
	}, nil
}

// NewRouter builds the chi router over the provided services. Split out so
// tests can serve an in-memory store.
func NewRouter(svcs Services, jwtSecret string) *chi.Mux {
	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, svcs.Sessions, jwtSecret)
	})
	router.Route("/jobs", func(r chi.Router) {
		handlers.JobRouter(r, svcs.Jobs, svcs.Sessions, authMiddleware)
	})
	router.Route("/experts", func(r chi.Router) {
		handlers.ExpertRouter(r, svcs.Experts, authMiddleware)
	})
	router.Route("/software", func(r chi.Router) {
		handlers.SoftwareRouter(r, svcs.Software, svcs.Sessions, authMiddleware)
	})
	router.Route("/hardware", func(r chi.Router) {
		handlers.HardwareRouter(r, svcs.Hardware, svcs.Sessions, authMiddleware)
	})

	return router
}

func buildServices(ctx context.Context, kv *kvstore.KV) (Services, error) {
	jobStore := store.NewJobStore(kv)
	expertStore := store.NewExpertStore(kv)
	softwareStore := store.NewSoftwareStore(kv)
	hardwareStore := store.NewHardwareStore(kv)
	userStore := store.NewUserStore(kv)
	sessionStore := store.NewSessionStore(kv, userStore)

	inits := []func(context.Context) error{
		jobStore.Initialize,
		expertStore.Initialize,
		softwareStore.Initialize,
		hardwareStore.Initialize,
		userStore.Initialize,
		sessionStore.Initialize,
	}
	for _, init := range inits {
		if err := init(ctx); err != nil {
			return Services{}, fmt.Errorf("initialize stores: %w", err)
		}
	}

	return Services{
		Jobs:     services.NewJobService(jobStore),
		Experts:  services.NewExpertService(expertStore),
		Software: services.NewSoftwareService(softwareStore),
		Hardware: services.NewHardwareService(hardwareStore),
		Sessions: services.NewSessionService(sessionStore, userStore),
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.kv != nil {
		_ = s.kv.Close()
	}
	return s.httpServer.Close()
}
