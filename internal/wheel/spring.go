package wheel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults shared by the picker and the screen transitions.
const (
	DefaultRestDelta = 0.5
	DefaultRestSpeed = 2.0
)

// SpringParams describes one spring animation from From to To.
// Stiffness, Damping and Mass use the usual spring-mass-damper units;
// Velocity seeds the initial velocity.
type SpringParams struct {
	From, To  float64
	Stiffness float64
	Damping   float64
	Mass      float64 // 0 means 1
	Velocity  float64

	// Rest thresholds; zero picks DefaultRestDelta / DefaultRestSpeed.
	RestDelta float64
	RestSpeed float64

	OnUpdate   func(v float64)
	OnComplete func()
}

// Animation is a running animation that can be stopped. A stopped animation
// never calls OnUpdate or OnComplete again.
type Animation interface {
	Stop()
}

// SpringDriver starts spring animations.
type SpringDriver interface {
	Animate(p SpringParams) Animation
}

// HarmonicaDriver steps springs with harmonica, one step per frame.
type HarmonicaDriver struct {
	frames *Frames
	dt     float64
}

// NewHarmonicaDriver returns a driver advancing springs on frames at fps.
func NewHarmonicaDriver(frames *Frames, fps int) *HarmonicaDriver {
	return &HarmonicaDriver{frames: frames, dt: harmonica.FPS(fps)}
}

// Animate starts a spring. The first step runs on the next frame, so
// OnComplete is never called synchronously.
func (d *HarmonicaDriver) Animate(p SpringParams) Animation {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	a := &springAnimation{
		frames: d.frames,
		spring: harmonica.NewSpring(d.dt, AngularFrequency(p.Stiffness, mass), DampingRatio(p.Damping, p.Stiffness, mass)),
		params: p,
		pos:    p.From,
		vel:    p.Velocity,
	}
	if a.params.RestDelta <= 0 {
		a.params.RestDelta = DefaultRestDelta
	}
	if a.params.RestSpeed <= 0 {
		a.params.RestSpeed = DefaultRestSpeed
	}
	a.req = d.frames.Request(a.step)
	return a
}

// AngularFrequency converts stiffness and mass to harmonica's angular frequency.
func AngularFrequency(stiffness, mass float64) float64 {
	return math.Sqrt(stiffness / mass)
}

// DampingRatio converts a damping coefficient to harmonica's damping ratio.
// A ratio of 1 is critically damped.
func DampingRatio(damping, stiffness, mass float64) float64 {
	if stiffness <= 0 || mass <= 0 {
		return 1
	}
	return damping / (2 * math.Sqrt(stiffness*mass))
}

type springAnimation struct {
	frames  *Frames
	spring  harmonica.Spring
	params  SpringParams
	pos     float64
	vel     float64
	req     *FrameRequest
	stopped bool
}

func (a *springAnimation) step() {
	if a.stopped {
		return
	}
	target := a.params.To
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, target)

	if math.Abs(a.pos-target) < a.params.RestDelta && math.Abs(a.vel) < a.params.RestSpeed {
		a.stopped = true
		a.pos, a.vel = target, 0
		if a.params.OnUpdate != nil {
			a.params.OnUpdate(target)
		}
		if a.params.OnComplete != nil {
			a.params.OnComplete()
		}
		return
	}

	if a.params.OnUpdate != nil {
		a.params.OnUpdate(a.pos)
	}
	a.req = a.frames.Request(a.step)
}

func (a *springAnimation) Stop() {
	a.stopped = true
	a.req.Cancel()
}
