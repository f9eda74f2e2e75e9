package orbit

import (
	"fmt"
	"math/rand"
	"strings"

	"orbit-rings.klederson.com/internal/config"
)

// SeedPolicy selects when a driver's initial angles are laid out.
type SeedPolicy int

const (
	// SeedEager lays out angles when the driver is created.
	SeedEager SeedPolicy = iota
	// SeedLazy leaves angles empty until the first frame after mount. That
	// frame seeds without advancing.
	SeedLazy
)

func (p SeedPolicy) String() string {
	switch p {
	case SeedEager:
		return "eager"
	case SeedLazy:
		return "lazy"
	}
	return fmt.Sprintf("SeedPolicy(%d)", int(p))
}

// ParseSeedPolicy maps a flag value to a policy.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eager":
		return SeedEager, nil
	case "lazy":
		return SeedLazy, nil
	}
	return 0, fmt.Errorf("%w: unknown seed policy %q (use eager or lazy)", config.ErrInvalidConfiguration, s)
}

// Driver advances the angles of one ring's items.
type Driver struct {
	n      int
	slots  int // angular spacing divisor, >= n
	angles []float64
	speeds []float64
	seeded bool
	frames uint64
}

// NewDriver creates a driver for n evenly spaced items. Speeds are drawn
// once here and never change.
func NewDriver(n int, speed SpeedPolicy, seed SeedPolicy, rng *rand.Rand) *Driver {
	return NewSlotDriver(n, n, speed, seed, rng)
}

// NewSlotDriver creates a driver for the first n of slots positions around
// a ring. State is allocated for the n items only.
func NewSlotDriver(n, slots int, speed SpeedPolicy, seed SeedPolicy, rng *rand.Rand) *Driver {
	if n < 0 {
		n = 0
	}
	if slots < n {
		slots = n
	}
	d := &Driver{
		n:      n,
		slots:  slots,
		speeds: speed.Speeds(n, rng),
		angles: []float64{},
	}
	if seed == SeedEager {
		d.seed()
	}
	return d
}

func (d *Driver) seed() {
	d.angles = SlotAngles(d.n, d.slots)
	d.seeded = true
}

// Step performs one frame transition: angle_i = (angle_i + speed_i) mod 2π.
func (d *Driver) Step() {
	d.frames++
	if !d.seeded {
		d.seed()
		return
	}
	for i := range d.angles {
		d.angles[i] = NormalizeAngle(d.angles[i] + d.speeds[i])
	}
}

// Seeded reports whether angles have been laid out.
func (d *Driver) Seeded() bool { return d.seeded }

// Len returns the number of animated items.
func (d *Driver) Len() int { return d.n }

// Slots returns the number of evenly spaced positions the items sit on.
func (d *Driver) Slots() int { return d.slots }

// Frames returns how many times Step has run.
func (d *Driver) Frames() uint64 { return d.frames }

// Angles returns a copy of the current angles. Empty until seeded.
func (d *Driver) Angles() []float64 {
	out := make([]float64, len(d.angles))
	copy(out, d.angles)
	return out
}

// Angle returns slot i's angle, or false when unseeded or out of range.
func (d *Driver) Angle(i int) (float64, bool) {
	if i < 0 || i >= len(d.angles) {
		return 0, false
	}
	return d.angles[i], true
}

// Speeds returns a copy of the per-slot velocities.
func (d *Driver) Speeds() []float64 {
	out := make([]float64, len(d.speeds))
	copy(out, d.speeds)
	return out
}
