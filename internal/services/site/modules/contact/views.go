package contact

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mjkconsultancy/site/internal/contactform"
)

// DefaultViewTTL is how long an untouched contact view is kept.
const DefaultViewTTL = 30 * time.Minute

// view binds one contact form controller to one page view.
type view struct {
	id         string
	controller *contactform.Controller
	lastSeen   time.Time
}

// viewRegistry owns the live contact views. A view lives from the GET that
// created it until its close request, its TTL expiring, or shutdown.
type viewRegistry struct {
	ttl           time.Duration
	now           func() time.Time
	newController func() *contactform.Controller
	logger        *zap.Logger

	mu      sync.Mutex
	entries map[string]*view
	closed  bool

	stopJanitor chan struct{}
	janitorDone chan struct{}
}

func newViewRegistry(ttl time.Duration, newController func() *contactform.Controller, logger *zap.Logger) *viewRegistry {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &viewRegistry{
		ttl:           ttl,
		now:           time.Now,
		newController: newController,
		logger:        logger,
		entries:       make(map[string]*view),
	}
}

// create registers a fresh view with an idle, empty controller.
func (r *viewRegistry) create() *view {
	v := &view{
		id:         uuid.NewString(),
		controller: r.newController(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v.lastSeen = r.now()
	if r.closed {
		v.controller.Close()
		return v
	}
	r.entries[v.id] = v
	return v
}

// lookup returns a live view and refreshes its TTL.
func (r *viewRegistry) lookup(id string) (*view, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	v.lastSeen = r.now()
	return v, true
}

// remove tears a view down. Unknown ids are ignored.
func (r *viewRegistry) remove(id string) bool {
	r.mu.Lock()
	v, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if ok {
		v.controller.Close()
	}
	return ok
}

func (r *viewRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// sweep evicts views idle for longer than the TTL and returns how many were
// evicted.
func (r *viewRegistry) sweep() int {
	r.mu.Lock()
	cutoff := r.now().Add(-r.ttl)
	var expired []*view
	for id, v := range r.entries {
		if v.lastSeen.Before(cutoff) {
			expired = append(expired, v)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()
	for _, v := range expired {
		v.controller.Close()
	}
	if len(expired) > 0 {
		r.logger.Debug("evicted idle contact views", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// startJanitor sweeps on a fixed interval until close.
func (r *viewRegistry) startJanitor(interval time.Duration) {
	if interval <= 0 {
		interval = janitorInterval(r.ttl)
	}
	r.mu.Lock()
	if r.stopJanitor != nil || r.closed {
		r.mu.Unlock()
		return
	}
	r.stopJanitor = make(chan struct{})
	r.janitorDone = make(chan struct{})
	stop, done := r.stopJanitor, r.janitorDone
	r.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.sweep()
			case <-stop:
				return
			}
		}
	}()
}

// close stops the janitor and closes every live view.
func (r *viewRegistry) close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	entries := r.entries
	r.entries = make(map[string]*view)
	stop, done := r.stopJanitor, r.janitorDone
	r.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	for _, v := range entries {
		v.controller.Close()
	}
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
