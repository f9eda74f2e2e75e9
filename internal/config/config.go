package config

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Ring geometry defaults (pixels)
	DefaultCircleRadius      = 150.0
	DefaultCircleSpacing     = 40.0 // Radius increment per ring level
	DefaultCircleItemRadius  = 14.0
	DefaultCircleItemSpacing = 3.0 // Divisor, not a distance

	// Demo mode geometry (matches the bundled demo palette)
	DemoCircleRadius      = 40.0
	DemoCircleItemSpacing = 2.5

	// Animation
	FixedSpeed = 0.002 // Radians per frame
	TargetFPS  = 60    // Display refresh rate the speeds are tuned for
	MaxRings   = 4096  // Safety cap on concentric levels

	// MaxRingSlots caps the slot count of a single ring. Radii large
	// enough to exceed it still validate.
	MaxRingSlots = math.MaxInt32

	// Terminal display
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	PixelsPerCell = 8.0 // Default horizontal pixels represented by one column
	HistorySize   = 60  // Frame intervals kept for the FPS readout

	// Window display
	WindowWidth  = 960
	WindowHeight = 960

	// App
	AppName    = "ORBIT-RINGS"
	AppVersion = "1.0"
)

// SpeedRange is a half-open interval [Min, Max) of angular velocities in
// radians per frame.
type SpeedRange struct {
	Min float64
	Max float64
}

var (
	// ForwardSpeedRange keeps every item rotating forward.
	ForwardSpeedRange = SpeedRange{Min: 0.002, Max: 0.003}
	// BidirectionalSpeedRange lets individual items rotate in reverse.
	BidirectionalSpeedRange = SpeedRange{Min: -0.005, Max: 0.005}
)

// ErrInvalidConfiguration is returned for sizing parameters that cannot
// produce a layout.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Params holds the ring sizing parameters.
type Params struct {
	CircleRadius      float64
	CircleSpacing     float64
	CircleItemRadius  float64
	CircleItemSpacing float64
}

// DefaultParams returns the stock sizing.
func DefaultParams() Params {
	return Params{
		CircleRadius:      DefaultCircleRadius,
		CircleSpacing:     DefaultCircleSpacing,
		CircleItemRadius:  DefaultCircleItemRadius,
		CircleItemSpacing: DefaultCircleItemSpacing,
	}
}

// DemoParams returns the sizing used with the demo palette.
func DemoParams() Params {
	p := DefaultParams()
	p.CircleRadius = DemoCircleRadius
	p.CircleItemSpacing = DemoCircleItemSpacing
	return p
}

// Validate rejects parameters that would divide by zero or never terminate.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
		zero  bool // zero allowed
	}{
		{"circle radius", p.CircleRadius, true},
		{"circle spacing", p.CircleSpacing, false},
		{"circle item radius", p.CircleItemRadius, false},
		{"circle item spacing", p.CircleItemSpacing, false},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfiguration, c.name, c.value)
		}
		if c.value < 0 || (c.value == 0 && !c.zero) {
			bound := "positive"
			if c.zero {
				bound = "non-negative"
			}
			return fmt.Errorf("%w: %s must be %s, got %v", ErrInvalidConfiguration, c.name, bound, c.value)
		}
	}
	return nil
}
