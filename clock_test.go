package excserial

import "time"

// fakeClock is a manual clock. Yield advances it by step so spinning loops
// make progress; Sleep advances it by the requested duration.
type fakeClock struct {
	now    time.Time
	step   time.Duration
	yields int
	sleeps []time.Duration
	onTick func(now time.Time)
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0), step: step}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Yield() {
	c.yields++
	c.advance(c.step)
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.advance(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	if c.onTick != nil {
		c.onTick(c.now)
	}
}
