package picker

import (
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("huepick.picker")

// Listener receives the color produced by a write.
type Listener func(Color)

// Store holds the current picker color and notifies listeners on change.
// Every write replaces HSV and RGB together, so a listener never observes
// one triple without the other.
type Store struct {
	mu        sync.RWMutex
	color     Color
	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn Listener
}

// NewStore returns a store holding the default color.
func NewStore() *Store {
	return NewStoreWith(Default())
}

// NewStoreWith returns a store holding c.
func NewStoreWith(c Color) *Store {
	return &Store{color: c}
}

// Color returns the current color.
func (s *Store) Color() Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.color
}

// Subscribe registers fn to be called after every write that changes the
// color. Listeners run on the writing goroutine, in registration order.
// The returned function removes the listener.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.listeners {
		if sub.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// WriteHSV sets all three HSV components and rederives RGB.
func (s *Store) WriteHSV(h, sat, val float64) Color {
	return s.update("hsv", func(c Color) Color { return c.WithHSV(h, sat, val) })
}

// WriteSV sets saturation and value, keeping the current hue.
func (s *Store) WriteSV(sat, val float64) Color {
	return s.update("sv", func(c Color) Color { return c.WithSV(sat, val) })
}

// WriteRGB sets all three RGB channels and rederives HSV.
func (s *Store) WriteRGB(r, g, b float64) Color {
	return s.update("rgb", func(c Color) Color { return c.WithRGB(r, g, b) })
}

// SetAlpha sets the alpha channel.
func (s *Store) SetAlpha(a float64) Color {
	return s.update("alpha", func(c Color) Color { return c.WithAlpha(a) })
}

// Set replaces the whole color, e.g. when loading a swatch.
func (s *Store) Set(c Color) Color {
	return s.update("set", func(Color) Color { return c })
}

func (s *Store) update(kind string, next func(Color) Color) Color {
	s.mu.Lock()
	prev := s.color
	cur := next(prev)
	if cur == prev {
		s.mu.Unlock()
		return cur
	}
	s.color = cur
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.fn
	}
	s.mu.Unlock()

	log.Debugf("write %s: %s -> %s (%s)", kind, prev.RGBAHex(), cur.RGBAHex(), cur.HSV())
	for _, fn := range listeners {
		fn(cur)
	}
	return cur
}
