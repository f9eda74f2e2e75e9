package orbit

import (
	"log"
	"math/rand"

	"orbit-rings.klederson.com/internal/config"
)

// Options selects the animation policies for every ring of a Display.
type Options struct {
	Speed    SpeedPolicy
	Seed     SeedPolicy
	Rand     *rand.Rand // nil uses the global source
	MaxRings int        // <= 0 uses config.MaxRings
}

// Display is the entry point: it composes a dataset into rings and keeps
// one mounted Instance per ring on a Scheduler.
type Display struct {
	sched     *Scheduler
	opts      Options
	params    config.Params
	dataset   []string
	instances []*Instance
}

// NewDisplay composes dataset with p and mounts every ring on s.
func NewDisplay(s *Scheduler, dataset []string, p config.Params, opts Options) (*Display, error) {
	d := &Display{sched: s, opts: opts}
	if err := d.rebuild(dataset, p); err != nil {
		return nil, err
	}
	return d, nil
}

// rebuild composes first so a bad configuration leaves the current rings
// running untouched.
func (d *Display) rebuild(dataset []string, p config.Params) error {
	rings, err := Compose(dataset, p, d.opts.MaxRings)
	if err != nil {
		return err
	}

	d.unmountAll()

	d.params = p
	d.dataset = dataset
	d.instances = make([]*Instance, 0, len(rings))
	for _, r := range rings {
		in := NewInstance(r, d.opts.Speed, d.opts.Seed, d.opts.Rand)
		in.Mount(d.sched)
		d.instances = append(d.instances, in)
	}
	log.Printf("orbit: composed %d items into %d rings (radius=%.1f spacing=%.1f item=%.1f/%.2f)",
		len(dataset), len(rings), p.CircleRadius, p.CircleSpacing, p.CircleItemRadius, p.CircleItemSpacing)
	return nil
}

func (d *Display) unmountAll() {
	for _, in := range d.instances {
		in.Unmount()
	}
}

// SetParams recomputes every ring for new sizing parameters. Existing
// instances are torn down and fresh ones mounted.
func (d *Display) SetParams(p config.Params) error {
	return d.rebuild(d.dataset, p)
}

// SetDataset replaces the items and recomposes.
func (d *Display) SetDataset(dataset []string) error {
	return d.rebuild(dataset, d.params)
}

// SetOptions changes the animation policies and remounts every ring.
func (d *Display) SetOptions(opts Options) error {
	prev := d.opts
	d.opts = opts
	if err := d.rebuild(d.dataset, d.params); err != nil {
		d.opts = prev
		return err
	}
	return nil
}

// Close unmounts every ring. The Display can be rebuilt afterwards with
// SetParams or SetDataset.
func (d *Display) Close() {
	d.unmountAll()
}

// Params returns the current sizing parameters.
func (d *Display) Params() config.Params { return d.params }

// Options returns the current animation policies.
func (d *Display) Options() Options { return d.opts }

// Dataset returns the items being displayed.
func (d *Display) Dataset() []string { return d.dataset }

// Instances returns the live rings, innermost first.
func (d *Display) Instances() []*Instance { return d.instances }

// Rings returns the ring descriptors, innermost first.
func (d *Display) Rings() []Ring {
	out := make([]Ring, len(d.instances))
	for i, in := range d.instances {
		out[i] = in.Ring
	}
	return out
}

// Snapshot positions every visible item across all rings.
func (d *Display) Snapshot() []Placement {
	var out []Placement
	for _, in := range d.instances {
		out = append(out, in.Placements()...)
	}
	return out
}

// Extent returns the distance from the common center to the outer edge
// of the outermost ring's items. Zero when there are no rings.
func (d *Display) Extent() float64 {
	if len(d.instances) == 0 {
		return 0
	}
	last := d.instances[len(d.instances)-1]
	return last.Radius + last.ItemRadius
}
