package services

import (
	"context"
	"sync"
	"time"
)

// DefaultSlideInterval is the hero rotation period.
const DefaultSlideInterval = 5 * time.Second

// Slideshow rotates the hero slide index on a fixed period. Ticks and reads
// are safe from any goroutine.
type Slideshow struct {
	count    int
	interval time.Duration
	onTick   func(index int)

	mu     sync.Mutex
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSlideshow creates a stopped slideshow over count slides. onTick, if set,
// runs after every advance with the new index.
func NewSlideshow(count int, interval time.Duration, onTick func(index int)) *Slideshow {
	if interval <= 0 {
		interval = DefaultSlideInterval
	}
	return &Slideshow{count: count, interval: interval, onTick: onTick}
}

// Start launches the ticker. It returns false if the slideshow is already running.
func (s *Slideshow) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
	return true
}

func (s *Slideshow) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			idx := s.Advance()
			if s.onTick != nil && ctx.Err() == nil {
				s.onTick(idx)
			}
		}
	}
}

// Stop halts the ticker and waits for it to exit. Stopping a stopped
// slideshow is a no-op. Must not be called from onTick.
func (s *Slideshow) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Advance moves to the next slide and returns the new index. With no slides
// the index stays at 0.
func (s *Slideshow) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count > 0 {
		s.index = (s.index + 1) % s.count
	}
	return s.index
}

// Index returns the current slide.
func (s *Slideshow) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Running reports whether the ticker is active.
func (s *Slideshow) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Count returns the number of slides.
func (s *Slideshow) Count() int {
	return s.count
}
