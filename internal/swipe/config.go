package swipe

import "go.uber.org/zap"

const (
	defaultOverSwipe           = 20
	defaultActivationThreshold = 20
	defaultSwipeDamping        = 10
	defaultFPS                 = 60
)

// SpringConfig tunes the settle animation.
type SpringConfig struct {
	Damping                   float64
	Mass                      float64
	Stiffness                 float64
	OvershootClamping         bool
	RestSpeedThreshold        float64
	RestDisplacementThreshold float64
}

// DefaultSpring returns the default spring tuning.
func DefaultSpring() SpringConfig {
	return SpringConfig{
		Damping:                   20,
		Mass:                      0.2,
		Stiffness:                 100,
		RestSpeedThreshold:        0.5,
		RestDisplacementThreshold: 0.5,
	}
}

// merged returns s with unset tuning fields replaced by defaults.
func (s SpringConfig) merged() SpringConfig {
	d := DefaultSpring()
	if s.Damping <= 0 {
		s.Damping = d.Damping
	}
	if s.Mass <= 0 {
		s.Mass = d.Mass
	}
	if s.Stiffness <= 0 {
		s.Stiffness = d.Stiffness
	}
	if s.RestSpeedThreshold <= 0 {
		s.RestSpeedThreshold = d.RestSpeedThreshold
	}
	if s.RestDisplacementThreshold <= 0 {
		s.RestDisplacementThreshold = d.RestDisplacementThreshold
	}
	return s
}

// Config describes a single row. The zero value is usable: both sides
// disabled, default thresholds and spring tuning. Snap points are positive
// distances from the closed position; 0 is always an implicit snap point.
type Config struct {
	SnapPointsLeft  []float64
	SnapPointsRight []float64

	// OverSwipe is extra travel allowed past the extreme snap point of a
	// side that has snap points before the offset is hard-clamped.
	OverSwipe float64

	// ActivationThreshold is the minimum drag distance before the gesture
	// recognizer should start a drag on an openable side.
	ActivationThreshold float64

	// SwipeDamping divides the release velocity when biasing the resting
	// point toward the flick direction.
	SwipeDamping float64

	Animation SpringConfig

	// OnChange fires from the row's notifier goroutine after every natural
	// settle.
	OnChange func(Change)

	Logger *zap.Logger

	// FPS is the step rate of the settle animation.
	FPS int
}

// normalized fills in defaults for unset fields.
func (c Config) normalized() Config {
	if c.OverSwipe <= 0 {
		c.OverSwipe = defaultOverSwipe
	}
	if c.ActivationThreshold <= 0 {
		c.ActivationThreshold = defaultActivationThreshold
	}
	if c.SwipeDamping <= 0 {
		c.SwipeDamping = defaultSwipeDamping
	}
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	c.Animation = c.Animation.merged()
	return c
}
