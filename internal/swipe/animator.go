package swipe

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// animator advances an offset toward a target with a damped spring. Each
// started animation carries a settle callback; a superseded animation fires
// it with natural=false, so at most one natural completion is ever reported
// per final rest. Only the row's executor goroutine touches an animator.
type animator struct {
	spring         harmonica.Spring
	clampOvershoot bool
	restSpeed      float64
	restDist       float64

	vel      float64
	target   float64
	onSettle func(natural bool)
	running  bool
}

// newAnimator builds an animator from spring tuning. fps is the rate the
// executor steps the spring at.
func newAnimator(sc SpringConfig, fps int) *animator {
	// harmonica wants angular frequency and damping ratio rather than the
	// damping/mass/stiffness triple.
	omega := math.Sqrt(sc.Stiffness / sc.Mass)
	zeta := sc.Damping / (2 * math.Sqrt(sc.Stiffness*sc.Mass))
	return &animator{
		spring:         harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		clampOvershoot: sc.OvershootClamping,
		restSpeed:      sc.RestSpeedThreshold,
		restDist:       sc.RestDisplacementThreshold,
	}
}

// start begins or retargets an animation toward target.
func (a *animator) start(target float64, onSettle func(natural bool)) {
	a.settle(false)
	a.target = target
	a.onSettle = onSettle
	a.running = true
}

// interrupt stops the current animation without reaching rest, as when a
// gesture takes over the offset.
func (a *animator) interrupt() {
	a.settle(false)
	a.running = false
	a.vel = 0
}

// step advances pos one frame. On reaching rest it pins the value exactly
// to the target and fires the settle callback with natural=true.
func (a *animator) step(pos float64) (next float64, settled bool) {
	if !a.running {
		return pos, false
	}
	next, a.vel = a.spring.Update(pos, a.vel, a.target)
	if a.clampOvershoot && (pos-a.target)*(next-a.target) < 0 {
		next, a.vel = a.target, 0
	}
	if math.Abs(a.vel) < a.restSpeed && math.Abs(a.target-next) < a.restDist {
		a.running = false
		a.vel = 0
		a.settle(true)
		return a.target, true
	}
	return next, false
}

// settle fires and clears the pending settle callback, if any.
func (a *animator) settle(natural bool) {
	fn := a.onSettle
	a.onSettle = nil
	if fn != nil {
		fn(natural)
	}
}
