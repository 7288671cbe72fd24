package core

import "time"

// maxFrameTime caps accumulated wall time per rendered frame so a
// stalled terminal cannot trigger an unbounded burst of catch-up ticks.
const maxFrameTime = 250 * time.Millisecond

// FixedStep accumulates wall-clock time and converts it into whole
// fixed-duration simulation ticks. Each rendered frame calls Advance
// once and runs the returned number of ticks (possibly zero), which
// decouples simulation rate from display refresh rate.
type FixedStep struct {
	dt          time.Duration
	accumulator time.Duration
	last        time.Time
	started     bool
}

// NewFixedStep creates an accumulator for the given tick rate in Hz.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{dt: time.Second / time.Duration(tickRate)}
}

// Dt returns the fixed tick duration in seconds.
func (fs *FixedStep) Dt() float64 {
	return fs.dt.Seconds()
}

// Advance records the current time and returns how many whole
// simulation ticks are due. The first call establishes the time base
// and returns zero.
func (fs *FixedStep) Advance(now time.Time) int {
	if !fs.started {
		fs.started = true
		fs.last = now
		return 0
	}

	frame := now.Sub(fs.last)
	fs.last = now
	if frame < 0 {
		frame = 0
	}
	if frame > maxFrameTime {
		frame = maxFrameTime
	}

	fs.accumulator += frame
	ticks := int(fs.accumulator / fs.dt)
	fs.accumulator -= time.Duration(ticks) * fs.dt
	return ticks
}

// Reset clears accumulated time, e.g. when resuming from pause so the
// paused interval does not replay as a tick burst.
func (fs *FixedStep) Reset() {
	fs.accumulator = 0
	fs.started = false
}
