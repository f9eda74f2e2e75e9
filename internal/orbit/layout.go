package orbit

import (
	"math"

	"orbit-rings.klederson.com/internal/config"
)

const twoPi = 2 * math.Pi

// ItemsPerRing computes how many item slots fit around a ring of the given
// radius without overlap, scaled down by the spacing divisor.
func ItemsPerRing(radius, itemRadius, itemSpacing float64) (int, error) {
	p := config.Params{
		CircleRadius:      radius,
		CircleSpacing:     1, // not used by the slot count
		CircleItemRadius:  itemRadius,
		CircleItemSpacing: itemSpacing,
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	slots := math.Floor((twoPi * radius) / (2 * itemRadius))
	n := math.Floor(slots / itemSpacing)
	switch {
	case n > config.MaxRingSlots: // also catches +Inf
		return config.MaxRingSlots, nil
	case n < 0:
		return 0, nil
	}
	return int(n), nil
}

// InitialAngles spreads n items evenly around the ring, first item at 0.
func InitialAngles(n int) []float64 {
	return SlotAngles(n, n)
}

// SlotAngles returns the angles of the first n of slots evenly spaced
// slots. A partially filled ring keeps the spacing of a full one.
func SlotAngles(n, slots int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if slots < n {
		slots = n
	}
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = float64(i) / float64(slots) * twoPi
	}
	return angles
}

// Position returns the top-left corner of an item's 2r box, relative to
// the ring's own bounding box (ring center at (R, R)).
func Position(angle, radius, itemRadius float64) (x, y float64) {
	x = radius + radius*math.Cos(angle) - itemRadius
	y = radius + radius*math.Sin(angle) - itemRadius
	return x, y
}

// Center returns the item center relative to the ring center.
func Center(angle, radius float64) (x, y float64) {
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// math.Mod of a tiny negative value can round back up to 2π
	if a >= twoPi {
		a = 0
	}
	return a
}
