package nonce

import (
	"slices"
	"sync"
	"time"
)

const (
	DefaultWindow     = 50
	DefaultMaxRetries = 1000
)

// Generator выдаёт nonce на основе времени в миллисекундах и помнит последние
// Window выданных значений. Совпадения старше окна не отслеживаются.
type Generator struct {
	mu         sync.Mutex
	window     int
	maxRetries int
	clock      func() time.Time
	history    []int64
}

type Option func(*Generator)

func WithWindow(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.window = n
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

func WithMaxRetries(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.maxRetries = n
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		window:     DefaultWindow,
		maxRetries: DefaultMaxRetries,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.history = make([]int64, 0, g.window)
	return g
}

// Next не может завершиться ошибкой. При грубом разрешении часов после
// maxRetries повторных замеров берётся max(history)+1.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	candidate := g.clock().UnixMilli()
	for retries := 0; slices.Contains(g.history, candidate); retries++ {
		if retries < g.maxRetries {
			candidate = g.clock().UnixMilli()
			continue
		}
		candidate = slices.Max(g.history) + 1
	}

	if len(g.history) == g.window {
		g.history = append(g.history[:0], g.history[1:]...)
	}
	g.history = append(g.history, candidate)

	return candidate
}

func (g *Generator) SetWindow(n int) {
	if n <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.window = n
	if len(g.history) > n {
		g.history = append(g.history[:0], g.history[len(g.history)-n:]...)
	}
}

func (g *Generator) Window() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.window
}

func (g *Generator) History() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.history)
}
