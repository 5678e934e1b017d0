// Package invite simulates students joining through an invite link.
package invite

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

// Defaults match the signup screens.
const (
	DefaultCap      = 50
	DefaultInterval = 2 * time.Second
	DefaultMaxStep  = 2
)

// Config controls the pace of a Counter.
type Config struct {
	Cap      int
	Interval time.Duration
	MaxStep  int
}

// Option is a function that configures a Counter.
type Option func(*Counter)

// WithStep replaces the random increment. fn receives the configured max step.
func WithStep(fn func(maxStep int) int) Option {
	return func(c *Counter) {
		c.step = fn
	}
}

// WithOnTick registers a callback invoked after every increment with the new count.
// It runs on the counter goroutine.
func WithOnTick(fn func(ctx context.Context, count int)) Option {
	return func(c *Counter) {
		c.onTick = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Counter) {
		c.logger = logger
	}
}

// Counter adds a random amount in [0, MaxStep] every Interval until it reaches
// Cap, then stops itself. It is safe for concurrent use.
type Counter struct {
	cfg    Config
	step   func(maxStep int) int
	onTick func(ctx context.Context, count int)
	logger *slog.Logger

	mu       sync.Mutex
	count    int
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	watchers map[chan int]struct{}
}

// New creates a stopped counter at zero.
func New(cfg Config, opts ...Option) *Counter {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Cap < 0 {
		cfg.Cap = 0
	}
	if cfg.MaxStep < 0 {
		cfg.MaxStep = 0
	}

	c := &Counter{
		cfg:      cfg,
		step:     func(maxStep int) int { return rand.IntN(maxStep + 1) },
		logger:   slog.Default(),
		watchers: make(map[chan int]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "invite_counter")
	return c
}

// Start begins ticking from the current count. It is a no-op while running
// or once the cap has been reached. The counter stops when ctx is cancelled.
func (c *Counter) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running || c.count >= c.cfg.Cap {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.running = true
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(runCtx, c.done)
}

// Stop cancels the counter and waits for its goroutine to exit.
func (c *Counter) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done
}

// Count returns the current number of joined students.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Cap returns the configured maximum.
func (c *Counter) Cap() int {
	return c.cfg.Cap
}

// Running reports whether the counter goroutine is active.
func (c *Counter) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Done returns a channel closed when the current run ends, or nil if the
// counter has never been started.
func (c *Counter) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Watch streams the count. The current value is delivered first; slow readers
// only see the latest value. The channel is closed when the counter stops or
// ctx is done.
func (c *Counter) Watch(ctx context.Context) <-chan int {
	ch := make(chan int, 1)

	c.mu.Lock()
	ch <- c.count
	if !c.running {
		c.mu.Unlock()
		close(ch)
		return ch
	}
	c.watchers[ch] = struct{}{}
	done := c.done
	c.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			if _, ok := c.watchers[ch]; ok {
				delete(c.watchers, ch)
				close(ch)
			}
			c.mu.Unlock()
		case <-done:
		}
	}()
	return ch
}

func (c *Counter) run(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(c.cfg.Interval)
	defer func() {
		ticker.Stop()
		c.finish()
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("Invite counter cancelled", "count", c.Count())
			return
		case <-ticker.C:
			count, reached := c.advance()
			if c.onTick != nil {
				c.onTick(ctx, count)
			}
			if reached {
				c.logger.Debug("Invite counter reached cap", "count", count)
				return
			}
		}
	}
}

func (c *Counter) advance() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count += c.step(c.cfg.MaxStep)
	reached := c.count >= c.cfg.Cap
	if reached {
		c.count = c.cfg.Cap
	}
	for ch := range c.watchers {
		// Only this goroutine sends, so draining first guarantees room.
		select {
		case <-ch:
		default:
		}
		ch <- c.count
	}
	return c.count, reached
}

func (c *Counter) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
	c.cancel()
	for ch := range c.watchers {
		delete(c.watchers, ch)
		close(ch)
	}
}
