package throttle_test

import (
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/throttle"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

var start = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

func TestUnitLimitDefaults(t *testing.T) {
	ctrl := throttle.NewController(throttle.WithClock(&fakeClock{now: start}))

	assert.Equal(t, 5, ctrl.Limit(1), "should start at initial limit")
	assert.Equal(t, 5, ctrl.Limit(2), "should keep shops independent")
}

func TestUnitOnRateLimited(t *testing.T) {
	clock := &fakeClock{now: start}
	ctrl := throttle.NewController(throttle.WithClock(clock))

	assert.Equal(t, 4, ctrl.OnRateLimited(1), "should decrease limit by one")

	for i := 0; i < 20; i++ {
		ctrl.OnRateLimited(1)
	}

	assert.Equal(t, 1, ctrl.Limit(1), "should never go below minimum")
}

func TestUnitOnSuccessIncreasesAfterThree(t *testing.T) {
	clock := &fakeClock{now: start}
	ctrl := throttle.NewController(throttle.WithClock(clock))

	ctrl.OnRateLimited(1) // limit 4, cooldown starts

	clock.Advance(6 * time.Second)

	assert.Equal(t, 4, ctrl.OnSuccess(1), "first success shouldn't increase limit")
	assert.Equal(t, 4, ctrl.OnSuccess(1), "second success shouldn't increase limit")
	assert.Equal(t, 5, ctrl.OnSuccess(1), "third success should increase limit by one")
}

func TestUnitOnSuccessRespectsCooldown(t *testing.T) {
	clock := &fakeClock{now: start}
	ctrl := throttle.NewController(throttle.WithClock(clock))

	ctrl.OnRateLimited(1) // limit 4

	clock.Advance(2 * time.Second)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, ctrl.OnSuccess(1), "shouldn't increase limit during cooldown")
	}

	clock.Advance(4 * time.Second)

	assert.Equal(t, 5, ctrl.OnSuccess(1), "should increase limit once cooldown elapsed")
}

func TestUnitOnRateLimitedResetsSuccesses(t *testing.T) {
	clock := &fakeClock{now: start}
	ctrl := throttle.NewController(throttle.WithClock(clock))

	ctrl.OnRateLimited(1) // limit 4
	clock.Advance(6 * time.Second)

	ctrl.OnSuccess(1)
	ctrl.OnSuccess(1)
	ctrl.OnRateLimited(1) // limit 3, counter reset
	clock.Advance(6 * time.Second)

	assert.Equal(t, 3, ctrl.OnSuccess(1), "counter should restart after rate limit")
	assert.Equal(t, 3, ctrl.OnSuccess(1), "counter should restart after rate limit")
	assert.Equal(t, 4, ctrl.OnSuccess(1), "should increase only after three fresh successes")
}

func TestUnitLimitStaysWithinBounds(t *testing.T) {
	clock := &fakeClock{now: start}
	ctrl := throttle.NewController(throttle.WithClock(clock))

	for i := 0; i < 100; i++ {
		clock.Advance(6 * time.Second)
		limit := ctrl.OnSuccess(1)
		assert.GreaterOrEqual(t, limit, 1, "limit should never drop below 1")
		assert.LessOrEqual(t, limit, 10, "limit should never exceed 10")
	}

	assert.Equal(t, 10, ctrl.Limit(1), "should cap at maximum")

	for i := 0; i < 100; i++ {
		limit := ctrl.OnRateLimited(1)
		assert.GreaterOrEqual(t, limit, 1, "limit should never drop below 1")
		assert.LessOrEqual(t, limit, 10, "limit should never exceed 10")
	}
}

func TestUnitReset(t *testing.T) {
	clock := &fakeClock{now: start}
	ctrl := throttle.NewController(throttle.WithClock(clock))

	for i := 0; i < 4; i++ {
		ctrl.OnRateLimited(1)
	}
	assert.Equal(t, 1, ctrl.Limit(1))

	ctrl.Reset(1)

	assert.Equal(t, 5, ctrl.Limit(1), "should return to initial limit after reset")
}
