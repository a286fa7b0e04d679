// Package throttle implements per-shop adaptive concurrency limiting
// for outbound external catalog API requests.
package throttle

import (
	"sync"
	"time"
)

const (
	initialLimit = 5
	minLimit     = 1
	maxLimit     = 10

	// successesToIncrease is number of consecutive successful requests required before the limit may grow.
	successesToIncrease = 3
	// adjustmentCooldown is minimum time between two limit adjustments.
	adjustmentCooldown = 5 * time.Second
)

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

type systemClock struct{}

func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}

type shopState struct {
	limit        int
	successes    int
	lastAdjusted time.Time
}

// Option is custom configuration of Controller.
type Option func(c *Controller)

// Controller tracks allowed request concurrency per shop.
// State is in-memory only and lives for the duration of a sync job.
type Controller struct {
	mu    sync.Mutex
	shops map[int]*shopState
	clock Clock
}

// NewController returns new Controller.
func NewController(ops ...Option) *Controller {
	ctrl := &Controller{
		shops: map[int]*shopState{},
		clock: systemClock{},
	}

	for _, op := range ops {
		op(ctrl)
	}

	return ctrl
}

// Limit returns current allowed concurrency for shop.
func (c *Controller) Limit(shopID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state(shopID).limit
}

// OnSuccess records successful request. After three consecutive successes,
// provided the cooldown since the last adjustment elapsed and the limit is
// below the maximum, the limit grows by one. Returns current limit.
func (c *Controller) OnSuccess(shopID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state(shopID)
	state.successes++

	if state.successes >= successesToIncrease &&
		c.clock.Now().Sub(state.lastAdjusted) >= adjustmentCooldown &&
		state.limit < maxLimit {
		state.limit++
		state.successes = 0
		state.lastAdjusted = c.clock.Now()
	}

	return state.limit
}

// OnRateLimited records rate-limited request (HTTP 429). The limit shrinks by
// one (never below the minimum) and the success counter resets. Returns current limit.
func (c *Controller) OnRateLimited(shopID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state(shopID)
	if state.limit > minLimit {
		state.limit--
	}
	state.successes = 0
	state.lastAdjusted = c.clock.Now()

	return state.limit
}

// Reset discards all state for shop. Called at job completion so the
// per-shop map doesn't grow without bound.
func (c *Controller) Reset(shopID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.shops, shopID)
}

func (c *Controller) state(shopID int) *shopState {
	state, ok := c.shops[shopID]
	if !ok {
		state = &shopState{limit: initialLimit}
		c.shops[shopID] = state
	}
	return state
}

// WithClock sets Controller's custom Clock.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}
