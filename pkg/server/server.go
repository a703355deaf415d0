package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumen-ui/lumen/pkg/binding"
	"github.com/lumen-ui/lumen/pkg/middleware"
	"github.com/lumen-ui/lumen/pkg/progress"
	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/upload"
)

// Server hosts the demo application: a page of file controls, the upload
// endpoint behind them, the progress WebSocket, and a metrics endpoint.
type Server struct {
	config   Config
	store    *upload.DiskStore
	registry *binding.Registry[[]upload.Record]
	hub      *progress.Hub
	renderer *render.Renderer

	httpServer  *http.Server
	stopCleanup context.CancelFunc
}

// New creates a Server.
func New(opts ...Option) (*Server, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	store, err := upload.NewDiskStore(config.UploadDir, config.MaxUploadSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   config,
		store:    store,
		registry: binding.NewRegistry[[]upload.Record](),
		hub:      progress.NewHub(),
		renderer: render.New(render.Config{Pretty: config.Pretty}),
	}
	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Whatever lands under a control's id gets sized for the metrics and
	// logged; applications hang their own subscribers next to this one.
	s.registry.Subscribe(datasetControlID, func(records []upload.Record) {
		var total int64
		for _, rec := range records {
			total += rec.Size
		}
		middleware.RecordUploadBytes(total)
		log.Printf("server: %d file(s) published under %q (%d bytes)", len(records), datasetControlID, total)
	})

	return s, nil
}

// Registry exposes the binding registry so embedding applications can read
// and subscribe to control values.
func (s *Server) Registry() *binding.Registry[[]upload.Record] {
	return s.registry
}

// routes assembles the router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(req *http.Request) bool {
			return req.URL.Path != "/metrics"
		}),
	))

	r.Get("/", s.handleIndex)
	r.Post("/upload/{id}", upload.Handler(s.store, s.registry,
		upload.WithMaxRequestSize(s.config.MaxUploadSize),
		upload.WithAllowedTypes(s.config.AllowedTypes...),
		upload.WithProgress(s.hub),
	))
	r.Get("/progress/ws", s.hub.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving and blocks until the listener fails or Shutdown is
// called. It also runs the upload cleanup loop.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopCleanup = cancel
	go s.cleanupLoop(ctx)

	log.Printf("server: listening on %s", s.config.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.stopCleanup != nil {
		s.stopCleanup()
	}
	return s.httpServer.Shutdown(ctx)
}

// cleanupLoop periodically expires unclaimed uploads.
func (s *Server) cleanupLoop(ctx context.Context) {
	interval := s.config.UploadExpiry / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.store.Cleanup(s.config.UploadExpiry); err != nil {
				log.Printf("server: upload cleanup: %v", err)
			}
		}
	}
}
