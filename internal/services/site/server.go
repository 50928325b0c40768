// Package site hosts the brochure site HTTP surface.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/mjkconsultancy/site/internal/contactform"
	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/platform/timeouts"
	"github.com/mjkconsultancy/site/internal/services/site/app"
	"github.com/mjkconsultancy/site/internal/services/site/module"
	"github.com/mjkconsultancy/site/internal/services/site/modules"
	"github.com/mjkconsultancy/site/internal/services/site/modules/contact"
	"github.com/mjkconsultancy/site/internal/services/site/platform/observability"
	"github.com/mjkconsultancy/site/internal/services/site/platform/weberror"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
	sitestatic "github.com/mjkconsultancy/site/internal/services/site/static"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr string
	Content  *content.Registry
	Relay    contactform.Relay
	// ViewTTL bounds how long an untouched contact view is kept.
	ViewTTL    time.Duration
	ResetDelay time.Duration
	Logger     *zap.Logger
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Handler is the composed root handler. Close releases the live contact
// views held by its modules.
type Handler struct {
	http.Handler
	modules []module.Module
}

// Close releases module resources.
func (h *Handler) Close() {
	if h == nil {
		return
	}
	for _, m := range h.modules {
		if closer, ok := m.(module.Closer); ok {
			closer.Close()
		}
	}
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (*Handler, error) {
	if cfg.Content == nil {
		return nil, errors.New("content registry is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	deps := module.Dependencies{Content: cfg.Content, Logger: logger}
	h := &Handler{modules: modules.Default(deps, contact.Config{
		Relay:      cfg.Relay,
		ViewTTL:    cfg.ViewTTL,
		ResetDelay: cfg.ResetDelay,
	})}

	root := chi.NewRouter()
	root.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		observability.Trace(provider),
		observability.RequestLogger(logger),
	)
	// Set before mounting so module routers inherit it.
	root.NotFound(weberror.NotFoundHandler(deps).ServeHTTP)
	root.Handle(routepath.StaticPrefix+"*", http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	if err := app.Compose(root, h.modules); err != nil {
		h.Close()
		return nil, err
	}
	h.Handler = root
	return h, nil
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	handler    *Handler
	httpServer *http.Server
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		handler:  handler,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(logger.Named("http")),
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close ends every contact view and closes the listener.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.handler.Close()
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
}
