package widget

import (
	"context"
	"sync"
	"time"
)

// Updater is a widget that refreshes itself once per tick.
type Updater interface {
	TreeUpdate()
}

// Driver runs TreeUpdate on a set of widgets, one tick at a time. Ticks are
// serialized, so widgets only need to be safe against the driver itself.
type Driver struct {
	// AfterTick, if set, is called after every tick with the tick number.
	AfterTick func(tick uint64)

	mu      sync.Mutex
	widgets []Updater
	ticks   uint64
}

// NewDriver returns a driver for the given widgets.
func NewDriver(widgets ...Updater) *Driver {
	return &Driver{widgets: widgets}
}

// Add registers another widget. It takes effect on the next tick.
func (d *Driver) Add(w Updater) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.widgets = append(d.widgets, w)
}

// Tick updates every widget once and returns the tick number, starting at 1.
func (d *Driver) Tick() uint64 {
	d.mu.Lock()
	for _, w := range d.widgets {
		w.TreeUpdate()
	}
	d.ticks++
	n := d.ticks
	after := d.AfterTick
	d.mu.Unlock()

	if after != nil {
		after(n)
	}
	return n
}

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// Do runs fn while holding the tick lock, so settings can be changed between
// ticks without racing an update.
func (d *Driver) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Run ticks immediately and then every interval until ctx is done. It returns
// ctx.Err().
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Tick()
		}
	}
}
