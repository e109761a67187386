package countdown

import (
	"fmt"
	"sync"
	"time"

	"artbid-client/internal/biderrors"

	"github.com/jonboulle/clockwork"
)

// tickPeriod is the fixed re-computation interval for remaining time.
const tickPeriod = time.Second

// Engine ticks down toward an absolute deadline, emitting the remaining
// duration once per second (and immediately on Start). It fires its expiry
// callback exactly once when remaining reaches zero; after that it keeps
// reporting zero without repeating the signal. A view that changes its
// deadline builds a fresh Engine, which resets the fired flag.
//
// The Engine is owned by a single view instance. Start may be called once;
// Stop is idempotent and must be called before a replacement Engine starts,
// so two tickers never coexist for the same view.
type Engine struct {
	clock    clockwork.Clock
	deadline time.Time
	onExpire func()

	mu      sync.Mutex
	ticks   chan time.Duration
	stop    chan struct{}
	stopped bool
	fired   bool
	running bool
}

// New builds an Engine for the given deadline. onExpire may be nil. A zero
// deadline yields ErrNoDeadline: the caller should render a neutral loading
// state and never start the tick loop.
func New(clock clockwork.Clock, deadline time.Time, onExpire func()) (*Engine, error) {
	if deadline.IsZero() {
		return nil, fmt.Errorf("countdown: %w", biderrors.ErrNoDeadline)
	}
	return &Engine{
		clock:    clock,
		deadline: deadline,
		onExpire: onExpire,
		ticks:    make(chan time.Duration, 1),
		stop:     make(chan struct{}),
	}, nil
}

// Remaining recomputes the clamped time left as of now.
func (e *Engine) Remaining() time.Duration {
	rem := e.deadline.Sub(e.clock.Now())
	if rem < 0 {
		return 0
	}
	return rem
}

// C delivers one remaining-duration value per tick. The channel holds the
// latest value only; a slow consumer sees the freshest reading, not a backlog.
func (e *Engine) C() <-chan time.Duration {
	return e.ticks
}

// Start launches the tick loop. The first value is emitted synchronously so
// the display never renders a blank initial tick. A deadline already in the
// past emits zero and fires expiry immediately.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running || e.stopped {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	e.emit(e.Remaining())

	go e.loop()
}

func (e *Engine) loop() {
	ticker := e.clock.NewTicker(tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			e.emit(e.Remaining())
		case <-e.stop:
			return
		}
	}
}

// emit publishes the latest remaining value and fires expiry on the first
// zero reading.
func (e *Engine) emit(rem time.Duration) {
	select {
	case e.ticks <- rem:
	default:
		// replace the stale buffered value
		select {
		case <-e.ticks:
		default:
		}
		select {
		case e.ticks <- rem:
		default:
		}
	}

	if rem > 0 {
		return
	}
	e.mu.Lock()
	fire := !e.fired
	e.fired = true
	cb := e.onExpire
	e.mu.Unlock()
	if fire && cb != nil {
		cb()
	}
}

// Expired reports whether the one-time expiry signal has fired.
func (e *Engine) Expired() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fired
}

// Stop cancels the tick loop. Safe to call multiple times and before Start.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	close(e.stop)
}
