package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

// Notifier receives the state changes of view roots and drops the push
// channels of unmounted ones. Implementations must not block.
type Notifier interface {
	Notify(event models.Event)
	Disconnect(sessionID string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.Event) {}
func (nopNotifier) Disconnect(string)   {}

// ViewRoot is the live state of one browser session: navigation state, the
// hero slideshow and the gallery failure flags. It exists from Mount until
// Unmount, and Unmount stops every timer it owns.
type ViewRoot struct {
	id         string
	mu         sync.Mutex
	controller *ViewController
	images     *ImageResolver
	slideshow  *Slideshow
	lastSeen   atomic.Int64
	closeOnce  sync.Once
}

// ID returns the session id of the root.
func (r *ViewRoot) ID() string {
	return r.id
}

// Do runs fn with exclusive access to the root. Events of one session run
// one at a time and to completion. fn must not call back into the root.
func (r *ViewRoot) Do(fn func(c *ViewController) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.controller)
}

// Snapshot returns the current state including the slide index.
func (r *ViewRoot) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.controller.Snapshot()
	s.SlideIndex = r.slideshow.Index()
	return s
}

// Images returns the gallery resolver of the root.
func (r *ViewRoot) Images() *ImageResolver {
	return r.images
}

// Slideshow returns the hero slideshow of the root.
func (r *ViewRoot) Slideshow() *Slideshow {
	return r.slideshow
}

// LastSeen returns when the root last handled a request.
func (r *ViewRoot) LastSeen() time.Time {
	return time.Unix(0, r.lastSeen.Load())
}

func (r *ViewRoot) touch(now time.Time) {
	r.lastSeen.Store(now.UnixNano())
}

// close stops the slideshow and the loading timer. It is idempotent.
func (r *ViewRoot) close() {
	r.closeOnce.Do(func() {
		r.slideshow.Stop()
		r.controller.Close()
	})
}

// SessionConfig holds the timings and defaults of new view roots.
// MaxSessions caps the mounted roots; zero means no cap.
type SessionConfig struct {
	SlideInterval   time.Duration
	LoadingDelay    time.Duration
	IdleTimeout     time.Duration
	SweepInterval   time.Duration
	MaxSessions     int
	DefaultLanguage models.Language
	Images          ImageURLs
}

// SessionService mounts, tracks and unmounts view roots.
type SessionService struct {
	catalog  *models.Catalog
	config   SessionConfig
	notifier Notifier
	logger   zerolog.Logger
	now      func() time.Time

	mu     sync.RWMutex
	roots  map[string]*ViewRoot
	closed bool
}

// NewSessionService creates a new session service
func NewSessionService(catalog *models.Catalog, config SessionConfig, notifier Notifier, logger zerolog.Logger) *SessionService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = time.Minute
	}
	return &SessionService{
		catalog:  catalog,
		config:   config,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		roots:    make(map[string]*ViewRoot),
	}
}

// Mount creates a view root for a new session and starts its slideshow.
// It fails with ErrSessionLimit once MaxSessions roots are mounted.
func (s *SessionService) Mount(ctx context.Context) (*ViewRoot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	publish := func(e models.Event) {
		e.SessionID = id
		s.notifier.Notify(e)
	}

	root := &ViewRoot{
		id:         id,
		controller: NewViewController(s.catalog, s.config.DefaultLanguage, s.config.LoadingDelay, publish),
		images:     NewImageResolver(s.catalog.GalleryImages, s.config.Images),
	}
	root.slideshow = NewSlideshow(len(s.catalog.HeroSlides), s.config.SlideInterval, func(index int) {
		publish(models.Event{Type: models.EventSlide, Index: index, Timestamp: time.Now()})
	})
	root.touch(s.now())

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, apperrors.ErrSessionClosed
	}
	if limit := s.config.MaxSessions; limit > 0 && len(s.roots) >= limit {
		s.mu.Unlock()
		s.logger.Warn().Int("limit", limit).Msg("Session limit reached, refusing to mount")
		return nil, apperrors.NewSessionLimitError(limit)
	}
	s.roots[id] = root
	root.slideshow.Start()
	count := len(s.roots)
	s.mu.Unlock()

	s.logger.Debug().Str("session", id).Int("active", count).Msg("View root mounted")
	return root, nil
}

// Get returns the root of session id and marks it as active.
func (s *SessionService) Get(id string) (*ViewRoot, error) {
	s.mu.RLock()
	root, ok := s.roots[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	root.touch(s.now())
	return root, nil
}

// Touch marks session id as active. It reports whether the session exists.
func (s *SessionService) Touch(id string) bool {
	_, err := s.Get(id)
	return err == nil
}

// Unmount removes session id and stops its timers. Unknown ids are ignored.
func (s *SessionService) Unmount(id string) bool {
	s.mu.Lock()
	root, ok := s.roots[id]
	delete(s.roots, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	root.close()
	s.notifier.Disconnect(id)
	s.logger.Debug().Str("session", id).Msg("View root unmounted")
	return true
}

// Sweep unmounts every root idle for longer than the idle timeout and
// returns how many were removed.
func (s *SessionService) Sweep(now time.Time) int {
	if s.config.IdleTimeout <= 0 {
		return 0
	}
	cutoff := now.Add(-s.config.IdleTimeout)

	var expired []string
	s.mu.RLock()
	for id, root := range s.roots {
		if root.LastSeen().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	s.mu.RUnlock()

	removed := 0
	for _, id := range expired {
		if s.Unmount(id) {
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Int("active", s.Count()).Msg("Idle sessions swept")
	}
	return removed
}

// Run sweeps idle sessions until ctx is done.
func (s *SessionService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

// Count returns the number of mounted roots.
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roots)
}

// Close unmounts every root. Mount fails afterwards.
func (s *SessionService) Close() {
	s.mu.Lock()
	s.closed = true
	roots := s.roots
	s.roots = make(map[string]*ViewRoot)
	s.mu.Unlock()

	for id, root := range roots {
		root.close()
		s.notifier.Disconnect(id)
	}
	s.logger.Info().Int("unmounted", len(roots)).Msg("Session service closed")
}
