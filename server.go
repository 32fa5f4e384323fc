package busfleet

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/busfleet/config"
	"github.com/theoremus-urban-solutions/busfleet/fleet"
	"github.com/theoremus-urban-solutions/busfleet/web"
)

const shutdownTimeout = 10 * time.Second

// Server serves the lookup page and the fleet API over one registry
type Server struct {
	cfg      config.AppConfig
	registry *fleet.Registry
	log      *slog.Logger
	guard    *Guard
	limiter  *clientLimiter
	pages    *template.Template
	started  time.Time
	handler  http.Handler
}

// NewServer wires routes and middleware. An empty configured token is
// replaced by a random one for the life of the process.
func NewServer(cfg config.AppConfig, reg *fleet.Registry, log *slog.Logger) (*Server, error) {
	if reg == nil {
		return nil, errors.New("nil registry")
	}
	if log == nil {
		log = slog.Default()
	}
	token := cfg.Security.Token
	if token == "" {
		var err error
		if token, err = NewToken(); err != nil {
			return nil, err
		}
		log.Info("generated API token for this process")
	}
	pages, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		log:      log,
		guard: &Guard{
			Token:         token,
			AllowedHost:   cfg.Security.AllowedHost,
			RequireOrigin: cfg.Security.OriginRequired(),
		},
		pages:   pages,
		started: time.Now(),
	}
	if !cfg.RateLimit.Disabled {
		s.limiter = newClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	for _, o := range reg.Overlaps() {
		log.Warn("overlapping fleet ranges", "agency", o.Agency, "detail", o.String())
	}

	mw := []Middleware{Recover(log), RequestID(), Logger(log)}
	if cfg.Telemetry.Enabled {
		mw = append(mw, OTel(cfg.Telemetry.ServiceName))
	}
	s.handler = Chain(s.routes(), mw...)
	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.Static())))
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/agencies", s.handleAgencies)
	mux.Handle("GET /api/fleet", Chain(http.HandlerFunc(s.handleFleet), rateLimit(s.limiter), s.guarded))
	return mux
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler { return s.handler }

// Token is the shared secret embedded in the page and required by /api/fleet
func (s *Server) Token() string { return s.guard.Token }

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln and shuts down gracefully when ctx is done
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("server listening",
			"addr", ln.Addr().String(),
			"agencies", s.registry.Len(),
			"ranges", s.registry.RangeCount(),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.log.Info("server shut down successfully")
		return nil
	})
	return g.Wait()
}
