package clock

import (
	"time"

	"go.uber.org/fx"
)

// Module provides the real Clock.
var Module = fx.Provide(New)

// Clock is an interface that abstracts the functionality for measuring and displaying time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// After waits for the duration to elapse and then sends the current time on the returned channel.
	After(d time.Duration) <-chan time.Time
	// NewTicker returns a Ticker delivering the time on its channel at the given interval.
	NewTicker(d time.Duration) Ticker
	// Sleep pauses the current goroutine for at least the duration d. A negative or zero duration causes Sleep to return immediately.
	Sleep(duration time.Duration)
}

// Ticker is a periodic timer created by a Clock.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type clock struct{}

// New creates a new instance of Clock.
func New() Clock {
	return clock{}
}

func (clock) Now() time.Time {
	return time.Now()
}

func (clock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (clock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

func (clock) Sleep(duration time.Duration) {
	time.Sleep(duration)
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time {
	return r.t.C
}

func (r realTicker) Stop() {
	r.t.Stop()
}
