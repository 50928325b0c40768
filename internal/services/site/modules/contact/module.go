// Package contact serves the contact page and the per-view contact form
// endpoints.
package contact

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mjkconsultancy/site/internal/contactform"
	"github.com/mjkconsultancy/site/internal/services/site/module"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
)

// Config configures the contact module.
type Config struct {
	Relay      contactform.Relay
	ViewTTL    time.Duration
	ResetDelay time.Duration
	// Scheduler replaces the wall clock for success resets.
	Scheduler contactform.Scheduler
	// JanitorInterval overrides the eviction sweep cadence.
	JanitorInterval time.Duration
}

// Module provides the contact routes.
type Module struct {
	deps       module.Dependencies
	cfg        Config
	views      *viewRegistry
	startOnce  sync.Once
	resetDelay time.Duration
	logger     *zap.Logger
}

// New returns a contact module.
func New(deps module.Dependencies, cfg Config) *Module {
	m := &Module{deps: deps, cfg: cfg, resetDelay: cfg.ResetDelay, logger: deps.Logger}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.resetDelay <= 0 {
		m.resetDelay = contactform.DefaultResetDelay
	}
	m.views = newViewRegistry(cfg.ViewTTL, m.newController, m.logger)
	return m
}

// ID returns a stable module identifier.
func (*Module) ID() string { return "contact" }

// Mount wires the contact route handlers and starts view eviction.
func (m *Module) Mount() (module.Mount, error) {
	if m.deps.Content == nil {
		return module.Mount{}, errors.New("contact: content registry is required")
	}
	if m.cfg.Relay == nil {
		return module.Mount{}, errors.New("contact: form relay is required")
	}
	m.startOnce.Do(func() {
		m.views.startJanitor(m.cfg.JanitorInterval)
	})

	router := chi.NewRouter()
	router.Get(routepath.Root, m.handleContact)
	router.Post(routepath.ContactViewSubmitPattern, m.handleSubmit)
	router.Post(routepath.ContactViewFieldsPattern, m.handleFields)
	router.Get(routepath.ContactViewFormPattern, m.handleForm)
	router.Post(routepath.ContactViewClosePattern, m.handleClose)
	return module.Mount{Prefix: routepath.Contact, Handler: router}, nil
}

// Close ends every live view and stops eviction.
func (m *Module) Close() {
	m.views.close()
}

func (m *Module) newController() *contactform.Controller {
	opts := []contactform.Option{
		contactform.WithResetDelay(m.resetDelay),
		contactform.WithLogger(m.logger),
		contactform.WithStatusHook(func(status contactform.Status) {
			m.logger.Debug("contact form status changed", zap.Stringer("status", status))
		}),
	}
	if m.cfg.Scheduler != nil {
		opts = append(opts, contactform.WithScheduler(m.cfg.Scheduler))
	}
	return contactform.New(m.cfg.Relay, opts...)
}
