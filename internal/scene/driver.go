package scene

import (
	"errors"
	"sync"
	"time"
)

// ErrNotRunning is returned by Tick before the driver has been started.
var ErrNotRunning = errors.New("animation driver not running")

// DriverState is the animation driver's lifecycle state
type DriverState int

const (
	StateUninitialized DriverState = iota
	StateRunning
)

func (s DriverState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Driver turns wall-clock reads into frames. It moves from uninitialized to running
// once, when startup has finished loading everything; there is no terminal state.
type Driver struct {
	mu    sync.Mutex
	state DriverState
	start time.Time
	now   func() time.Time
}

// NewDriver creates a driver reading time from now. A nil now uses time.Now.
func NewDriver(now func() time.Time) *Driver {
	if now == nil {
		now = time.Now
	}
	return &Driver{now: now}
}

func (d *Driver) State() DriverState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Start marks the driver running and pins t = 0 to the current clock reading.
// Starting a running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateRunning {
		return
	}
	d.start = d.now()
	d.state = StateRunning
}

// Elapsed returns seconds since Start.
func (d *Driver) Elapsed() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateRunning {
		return 0, ErrNotRunning
	}
	return d.now().Sub(d.start).Seconds(), nil
}

// Tick reads the clock and derives the frame for the current time.
func (d *Driver) Tick(aspectRatio float32) (Frame, error) {
	t, err := d.Elapsed()
	if err != nil {
		return Frame{}, err
	}
	return FrameAt(t, aspectRatio), nil
}
