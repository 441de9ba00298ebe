package engine

import "math"

// Clock accumulates wall time and converts it into whole fixed simulation
// steps. Rendering runs at whatever rate the frame loop manages; physics only
// ever advances in FixedDt increments.
type Clock struct {
	// FixedDt is the physics timestep in seconds.
	FixedDt float64

	// TimeScale multiplies incoming frame time. Zero pauses the simulation,
	// values above one fast-forward it.
	TimeScale float64

	// MaxSteps caps catch-up after a stall. When a frame would owe more
	// steps than this, the surplus time is discarded instead of spiraling.
	MaxSteps int

	accumulator float64
	time        float64
	frames      uint64
}

// NewClock creates a clock with the given fixed timestep, real-time scale and
// a catch-up cap of five steps.
func NewClock(fixedDt float64) *Clock {
	return &Clock{
		FixedDt:   fixedDt,
		TimeScale: 1.0,
		MaxSteps:  5,
	}
}

// Advance feeds one frame's wall time into the clock and returns the scaled
// frame delta plus the number of fixed steps now due. When the accumulator
// overruns MaxSteps worth of time, only the whole steps beyond the cap are
// dropped; the sub-step remainder is legitimately owed time and carries over.
// A long stall costs simulated time rather than a freeze.
func (c *Clock) Advance(frameDt float64) (scaledDt float64, steps int) {
	if frameDt < 0 {
		frameDt = 0
	}
	scaledDt = frameDt * c.TimeScale
	c.accumulator += scaledDt

	for c.accumulator >= c.FixedDt && steps < c.MaxSteps {
		c.accumulator -= c.FixedDt
		steps++
	}
	if steps == c.MaxSteps && c.accumulator >= c.FixedDt {
		c.accumulator = math.Mod(c.accumulator, c.FixedDt)
	}

	c.time += float64(steps) * c.FixedDt
	c.frames++
	return scaledDt, steps
}

// Time returns total simulated seconds, advancing only by completed fixed
// steps.
func (c *Clock) Time() float64 {
	return c.time
}

// Frame returns how many frames the clock has seen.
func (c *Clock) Frame() uint64 {
	return c.frames
}
