package orbit

import (
	"fmt"
	"math/rand"
	"strings"

	"orbit-rings.klederson.com/internal/config"
)

// SpeedPolicy selects how per-item angular velocities are assigned.
type SpeedPolicy int

const (
	// SpeedFixed gives every item config.FixedSpeed.
	SpeedFixed SpeedPolicy = iota
	// SpeedForward draws each speed from config.ForwardSpeedRange.
	SpeedForward
	// SpeedBidirectional draws each speed from config.BidirectionalSpeedRange,
	// so some items rotate in reverse.
	SpeedBidirectional

	speedPolicyCount
)

var speedPolicyNames = map[SpeedPolicy]string{
	SpeedFixed:         "fixed",
	SpeedForward:       "forward",
	SpeedBidirectional: "bidirectional",
}

func (p SpeedPolicy) String() string {
	if name, ok := speedPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SpeedPolicy(%d)", int(p))
}

// Next returns the policy after p, wrapping back to SpeedFixed.
func (p SpeedPolicy) Next() SpeedPolicy {
	return (p + 1) % speedPolicyCount
}

// ParseSpeedPolicy maps a flag value to a policy.
func ParseSpeedPolicy(s string) (SpeedPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range speedPolicyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown speed policy %q (use fixed, forward or bidirectional)",
		config.ErrInvalidConfiguration, s)
}

// Range returns the interval speeds are drawn from. Fixed collapses to a
// single value.
func (p SpeedPolicy) Range() config.SpeedRange {
	switch p {
	case SpeedForward:
		return config.ForwardSpeedRange
	case SpeedBidirectional:
		return config.BidirectionalSpeedRange
	default:
		return config.SpeedRange{Min: config.FixedSpeed, Max: config.FixedSpeed}
	}
}

// Speeds generates n angular velocities. rng is only consulted by the
// randomized policies; nil falls back to the global source.
func (p SpeedPolicy) Speeds(n int, rng *rand.Rand) []float64 {
	if n <= 0 {
		return []float64{}
	}
	speeds := make([]float64, n)
	r := p.Range()
	for i := range speeds {
		if p == SpeedFixed {
			speeds[i] = config.FixedSpeed
			continue
		}
		f := rand.Float64
		if rng != nil {
			f = rng.Float64
		}
		speeds[i] = r.Min + f()*(r.Max-r.Min)
	}
	return speeds
}
