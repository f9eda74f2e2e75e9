package orbit

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"orbit-rings.klederson.com/internal/config"
)

func TestDisplayMountsEveryRing(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(40), config.DemoParams(), Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	if got, want := s.Active(), len(d.Rings()); got != want {
		t.Fatalf("scheduled tasks = %d, want %d", got, want)
	}
	for _, in := range d.Instances() {
		if !in.Mounted() {
			t.Errorf("ring %d not mounted", in.Level)
		}
	}

	s.Frame()
	for _, in := range d.Instances() {
		if in.Driver().Frames() != 1 {
			t.Errorf("ring %d frames = %d, want 1", in.Level, in.Driver().Frames())
		}
	}
}

func TestDisplayRingsAreIndependent(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(40), config.DemoParams(), Options{
		Speed: SpeedBidirectional,
		Rand:  rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	a := d.Instances()[0].Driver().Speeds()
	b := d.Instances()[1].Driver().Speeds()
	if len(a) == len(b) {
		t.Fatalf("rings share a slot count: %d", len(a))
	}
	if a[0] == b[0] {
		t.Errorf("rings drew the same first speed %v", a[0])
	}
}

func TestDisplaySetParamsTearsDown(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(40), config.DemoParams(), Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	old := d.Instances()

	p := config.DefaultParams()
	if err := d.SetParams(p); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	for _, in := range old {
		if in.Mounted() {
			t.Errorf("old ring %d still mounted", in.Level)
		}
	}
	if got, want := s.Active(), len(d.Rings()); got != want {
		t.Errorf("scheduled tasks = %d, want %d", got, want)
	}
	if d.Params() != p {
		t.Errorf("params not applied")
	}

	frames := old[0].Driver().Frames()
	s.Frame()
	if old[0].Driver().Frames() != frames {
		t.Error("unmounted ring advanced")
	}
}

func TestDisplayRejectsBadParams(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(10), config.DefaultParams(), Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	before := d.Instances()

	p := config.DefaultParams()
	p.CircleItemRadius = -1
	if err := d.SetParams(p); !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Fatalf("SetParams error = %v", err)
	}
	if len(d.Instances()) != len(before) || d.Instances()[0] != before[0] || !before[0].Mounted() {
		t.Error("failed SetParams disturbed the running rings")
	}

	if _, err := NewDisplay(s, dataset(3), p, Options{}); !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Errorf("NewDisplay error = %v", err)
	}
}

func TestDisplayClose(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(20), config.DemoParams(), Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	d.Close()
	d.Close()
	if s.Active() != 0 {
		t.Errorf("scheduled tasks after Close = %d", s.Active())
	}
	for _, in := range d.Instances() {
		in.Unmount()
		if in.Mounted() {
			t.Errorf("ring %d mounted after Close", in.Level)
		}
	}
}

func TestDisplayLazySnapshot(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(8), config.DefaultParams(), Options{Seed: SeedLazy})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	if got := d.Snapshot(); len(got) != 0 {
		t.Fatalf("placements before first frame = %d, want 0", len(got))
	}
	s.Frame()
	if got := d.Snapshot(); len(got) != 8 {
		t.Fatalf("placements after first frame = %d, want 8", len(got))
	}
}

func TestDisplaySnapshotGeometry(t *testing.T) {
	s := NewScheduler()
	ds := dataset(12)
	d, err := NewDisplay(s, ds, config.DemoParams(), Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	snap := d.Snapshot()
	if len(snap) != len(ds) {
		t.Fatalf("placements = %d, want %d", len(snap), len(ds))
	}
	rings := d.Rings()
	for i, pl := range snap {
		if pl.Item != ds[i] {
			t.Errorf("placement %d item = %s, want %s", i, pl.Item, ds[i])
		}
		r := rings[pl.Level].Radius
		if dist := math.Hypot(pl.CX, pl.CY); math.Abs(dist-r) > 1e-6 {
			t.Errorf("placement %d at distance %v, ring radius %v", i, dist, r)
		}
	}
	if want := rings[len(rings)-1].Radius + 14; d.Extent() != want {
		t.Errorf("Extent() = %v, want %v", d.Extent(), want)
	}
}

func TestInstanceMountTwice(t *testing.T) {
	s := NewScheduler()
	in := NewInstance(Ring{Capacity: 3, Radius: 40, ItemRadius: 14, Items: dataset(3)}, SpeedFixed, SeedEager, nil)
	in.Unmount() // before mount is a no-op
	in.Mount(s)
	in.Mount(s)
	if s.Active() != 1 {
		t.Fatalf("scheduled tasks = %d, want 1", s.Active())
	}
	in.Unmount()
	in.Unmount()
	if s.Active() != 0 {
		t.Errorf("scheduled tasks = %d, want 0", s.Active())
	}
}

func TestInstanceRemount(t *testing.T) {
	s := NewScheduler()
	in := NewInstance(Ring{Capacity: 3, Radius: 40, ItemRadius: 14, Items: dataset(3)}, SpeedFixed, SeedEager, nil)
	in.Mount(s)
	s.Frame()
	in.Unmount()
	if in.Mounted() {
		t.Fatal("still mounted after Unmount")
	}
	s.Frame()

	in.Mount(s)
	if !in.Mounted() || s.Active() != 1 {
		t.Fatalf("remount: mounted=%v tasks=%d", in.Mounted(), s.Active())
	}
	s.Frame()
	if got := in.Driver().Frames(); got != 2 {
		t.Errorf("frames = %d, want 2 (one before unmount, one after remount)", got)
	}
	in.Unmount()
}

func TestDisplayHugeRadius(t *testing.T) {
	s := NewScheduler()
	p := config.Params{CircleRadius: 1e17, CircleSpacing: 40, CircleItemRadius: 14, CircleItemSpacing: 3}
	d, err := NewDisplay(s, dataset(3), p, Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	defer d.Close()

	rings := d.Instances()
	if len(rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(rings))
	}
	in := rings[0]
	if in.Capacity != config.MaxRingSlots {
		t.Errorf("capacity = %d, want %d", in.Capacity, config.MaxRingSlots)
	}
	if in.Driver().Len() != 3 || len(in.Driver().Speeds()) != 3 {
		t.Errorf("driver len = %d, want 3", in.Driver().Len())
	}
	s.Frame()
	if got := len(d.Snapshot()); got != 3 {
		t.Errorf("placements = %d, want 3", got)
	}
}

func TestInstanceStateCoversItemsOnly(t *testing.T) {
	s := NewScheduler()
	d, err := NewDisplay(s, dataset(40), config.DemoParams(), Options{})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	defer d.Close()
	last := d.Instances()[len(d.Instances())-1]
	if last.Driver().Len() != len(last.Items) || last.Driver().Slots() != last.Capacity {
		t.Errorf("last ring len=%d slots=%d, want %d/%d",
			last.Driver().Len(), last.Driver().Slots(), len(last.Items), last.Capacity)
	}
}

func ExampleCompose() {
	colors := []string{"#FF5733", "#33FF57", "#3357FF", "#FF33A1", "#A133FF"}
	rings, _ := Compose(colors, config.DemoParams(), 0)
	for _, r := range rings {
		fmt.Printf("ring %d radius %.0f: %v\n", r.Level, r.Radius, r.Items)
	}
	// Output:
	// ring 0 radius 40: [#FF5733 #33FF57 #3357FF]
	// ring 1 radius 80: [#FF33A1 #A133FF]
}
