package timer

import (
	"sync"
	"time"

	"BreakTimer/clock"
)

// interval is the handle to a repeating callback. It re-arms a one-shot
// clock timer before each fire so a FakeClock can drive it in tests.
type interval struct {
	clock  clock.Clock
	period time.Duration
	fire   func(*interval)

	mu      sync.Mutex
	timer   clock.Timer
	stopped bool
}

func startInterval(c clock.Clock, period time.Duration, fire func(*interval)) *interval {
	iv := &interval{clock: c, period: period, fire: fire}
	iv.mu.Lock()
	iv.timer = c.AfterFunc(period, iv.tick)
	iv.mu.Unlock()
	return iv
}

func (iv *interval) tick() {
	iv.mu.Lock()
	if iv.stopped {
		iv.mu.Unlock()
		return
	}
	iv.timer = iv.clock.AfterFunc(iv.period, iv.tick)
	iv.mu.Unlock()

	iv.fire(iv)
}

func (iv *interval) stop() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.stopped = true
	if iv.timer != nil {
		iv.timer.Stop()
	}
}
