package orbit

import (
	"errors"
	"fmt"

	"orbit-rings.klederson.com/internal/config"
)

// ErrTooManyRings is returned when a dataset would need more concentric
// levels than the configured cap.
var ErrTooManyRings = errors.New("too many rings")

// Ring describes one concentric level. Rings are plain data; each is
// animated by its own Instance.
type Ring struct {
	Level       int
	Radius      float64
	ItemRadius  float64
	ItemSpacing float64
	Capacity    int      // Item slots on this ring
	Items       []string // Dataset slice shown here, len <= Capacity
}

// Compose partitions dataset into rings. Each level holds
// min(capacity, remaining) items and the next level grows the radius by
// p.CircleSpacing. Levels with zero capacity are kept, empty, and the
// whole remainder moves outward. maxRings <= 0 uses config.MaxRings.
func Compose(dataset []string, p config.Params, maxRings int) ([]Ring, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if maxRings <= 0 {
		maxRings = config.MaxRings
	}

	var rings []Ring
	remaining := dataset
	radius := p.CircleRadius
	for level := 0; len(remaining) > 0; level++ {
		if level >= maxRings {
			return nil, fmt.Errorf("%w: %d items left after %d levels", ErrTooManyRings, len(remaining), maxRings)
		}

		capacity, err := ItemsPerRing(radius, p.CircleItemRadius, p.CircleItemSpacing)
		if err != nil {
			return nil, err
		}

		take := min(capacity, len(remaining))
		rings = append(rings, Ring{
			Level:       level,
			Radius:      radius,
			ItemRadius:  p.CircleItemRadius,
			ItemSpacing: p.CircleItemSpacing,
			Capacity:    capacity,
			Items:       remaining[:take:take],
		})

		remaining = remaining[take:]
		radius += p.CircleSpacing
	}
	return rings, nil
}

// Flatten concatenates the items of every ring in level order.
func Flatten(rings []Ring) []string {
	var out []string
	for _, r := range rings {
		out = append(out, r.Items...)
	}
	return out
}
