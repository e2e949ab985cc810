// Package carousel keeps the index state of the home page hero slider and the
// button-driven gallery track.
package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is how long each hero slide stays visible.
const DefaultInterval = 5 * time.Second

// Slider cycles through n slides, wrapping at both ends.
type Slider struct {
	mu      sync.Mutex
	n       int
	current int
}

func NewSlider(n int) *Slider {
	if n < 0 {
		n = 0
	}
	return &Slider{n: n}
}

func (s *Slider) Len() int { return s.n }

// Current is the visible slide, or -1 with no slides.
func (s *Slider) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.n == 0 {
		return -1
	}
	return s.current
}

func (s *Slider) Next() int { return s.step(1) }

func (s *Slider) Prev() int { return s.step(-1) }

// Show jumps to slide i modulo the slide count.
func (s *Slider) Show(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.n == 0 {
		return -1
	}
	s.current = mod(i, s.n)
	return s.current
}

func (s *Slider) step(d int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.n == 0 {
		return -1
	}
	s.current = mod(s.current+d, s.n)
	return s.current
}

// Run shows the current slide immediately, then advances every interval until
// ctx is done. show is called with each visible index. With no slides Run
// returns at once.
func (s *Slider) Run(ctx context.Context, interval time.Duration, show func(int)) {
	if s.n == 0 {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	show(s.Current())

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			show(s.Next())
		}
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Track is the manual gallery: prev/next stop at the ends instead of
// wrapping, and the offset is the translation for the visible item.
type Track struct {
	n         int
	index     int
	itemWidth int
}

// NewTrack returns a track of n items, each itemWidth pixels including margin.
func NewTrack(n, itemWidth int) *Track {
	return &Track{n: n, itemWidth: itemWidth}
}

func (t *Track) Index() int { return t.index }

// Next moves right; it reports false at the last item.
func (t *Track) Next() bool {
	if t.index >= t.n-1 {
		return false
	}
	t.index++
	return true
}

// Prev moves left; it reports false at the first item.
func (t *Track) Prev() bool {
	if t.index <= 0 {
		return false
	}
	t.index--
	return true
}

// Offset is how far the track is shifted left, in pixels.
func (t *Track) Offset() int { return t.index * t.itemWidth }
