package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlideshowIndexIsTicksModCount(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		s := NewSlideshow(n, time.Hour, nil)
		for k := 1; k <= 2*n+1; k++ {
			assert.Equal(t, k%n, s.Advance())
		}
	}
}

func TestSlideshowFiveImagesTwelveTicks(t *testing.T) {
	s := NewSlideshow(5, time.Hour, nil)
	for i := 0; i < 12; i++ {
		s.Advance()
	}
	assert.Equal(t, 2, s.Index())
}

func TestSlideshowWithoutSlidesHoldsZero(t *testing.T) {
	s := NewSlideshow(0, time.Hour, nil)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, s.Advance())
	}
}

func TestSlideshowTimer(t *testing.T) {
	var ticks atomic.Int32
	s := NewSlideshow(3, 5*time.Millisecond, func(int) { ticks.Add(1) })

	assert.True(t, s.Start())
	assert.False(t, s.Start(), "only one timer per slideshow")
	assert.True(t, s.Running())

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())
	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after stop")

	s.Stop()
}

func TestSlideshowRestart(t *testing.T) {
	s := NewSlideshow(2, time.Hour, nil)
	assert.True(t, s.Start())
	s.Stop()
	assert.True(t, s.Start())
	s.Stop()
}

func TestSlideshowDefaultInterval(t *testing.T) {
	s := NewSlideshow(2, 0, nil)
	assert.Equal(t, DefaultSlideInterval, s.interval)
	assert.Equal(t, 2, s.Count())
}
