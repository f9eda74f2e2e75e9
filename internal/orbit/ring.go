package orbit

import "math/rand"

// Placement is one positioned item. X/Y is the top-left of the item's box
// in its ring's bounding box; CX/CY is the item center relative to the
// common center of all rings.
type Placement struct {
	Level  int
	Index  int
	Item   string
	Angle  float64
	Radius float64 // item radius
	X, Y   float64
	CX, CY float64
}

// Instance is a live ring: its descriptor, its own angle/speed state and
// the frame subscription that animates it.
type Instance struct {
	Ring
	driver *Driver
	sub    *Subscription
}

// NewInstance builds an unmounted instance. Animation state covers the
// ring's items; their angles are spaced by its capacity.
func NewInstance(r Ring, speed SpeedPolicy, seed SeedPolicy, rng *rand.Rand) *Instance {
	return &Instance{
		Ring:   r,
		driver: NewSlotDriver(len(r.Items), r.Capacity, speed, seed, rng),
	}
}

// Mount starts animating on s. Mounting an already mounted instance does
// nothing; an unmounted one resumes from its current angles.
func (in *Instance) Mount(s *Scheduler) {
	if in.sub != nil {
		return
	}
	in.sub = s.Subscribe(in.driver.Step)
}

// Unmount cancels the frame subscription. Safe to call any number of
// times, mounted or not.
func (in *Instance) Unmount() {
	if in.sub == nil {
		return
	}
	in.sub.Cancel()
	in.sub = nil
}

// Mounted reports whether the instance is currently animating.
func (in *Instance) Mounted() bool {
	return in.sub != nil
}

// Driver exposes the instance's animation state.
func (in *Instance) Driver() *Driver { return in.driver }

// Placements positions each item on the ring. Nothing is returned before
// the angles are seeded.
func (in *Instance) Placements() []Placement {
	if !in.driver.Seeded() {
		return nil
	}
	out := make([]Placement, 0, len(in.Items))
	for i, item := range in.Items {
		angle, ok := in.driver.Angle(i)
		if !ok {
			break
		}
		x, y := Position(angle, in.Radius, in.ItemRadius)
		cx, cy := Center(angle, in.Radius)
		out = append(out, Placement{
			Level:  in.Level,
			Index:  i,
			Item:   item,
			Angle:  angle,
			Radius: in.ItemRadius,
			X:      x,
			Y:      y,
			CX:     cx,
			CY:     cy,
		})
	}
	return out
}
