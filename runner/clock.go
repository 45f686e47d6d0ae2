package runner

import "time"

// Clock paces the runner. Each value received from C is one frame.
type Clock interface {
	C() <-chan time.Time
	Stop()
}

type tickerClock struct {
	t *time.Ticker
}

// NewTicker ticks hz times a second. Rates above one tick per nanosecond
// run at one tick per nanosecond.
func NewTicker(hz int) Clock {
	if hz <= 0 {
		hz = 1
	}
	return tickerClock{t: time.NewTicker(tickInterval(hz))}
}

func tickInterval(hz int) time.Duration {
	return max(time.Nanosecond, time.Second/time.Duration(hz))
}

func (c tickerClock) C() <-chan time.Time { return c.t.C }
func (c tickerClock) Stop()               { c.t.Stop() }

type freeClock struct {
	c    chan time.Time
	quit chan struct{}
}

// NewFreeRunning ticks as fast as the runner takes ticks.
func NewFreeRunning() Clock {
	fc := &freeClock{c: make(chan time.Time), quit: make(chan struct{})}
	go func() {
		for {
			select {
			case fc.c <- time.Now():
			case <-fc.quit:
				return
			}
		}
	}()
	return fc
}

func (c *freeClock) C() <-chan time.Time { return c.c }
func (c *freeClock) Stop()               { close(c.quit) }
