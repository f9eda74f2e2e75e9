// Package palette supplies the colored items shown on the rings: the
// bundled demo set, YAML palette files and generated palettes.
package palette

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyPalette is returned when a palette file lists no colors.
	ErrEmptyPalette = errors.New("palette has no colors")
	// ErrBadColor is returned for entries that are not hex colors.
	ErrBadColor = errors.New("bad color")
)

// Palette is a named, ordered list of hex colors.
type Palette struct {
	Name   string   `yaml:"name,omitempty"`
	Colors []string `yaml:"colors"`
}

// demoColors is the stock 40-color set, duplicates included.
var demoColors = []string{
	"#FF5733", "#33FF57", "#3357FF", "#FF33A1", "#A133FF",
	"#33FFA1", "#A1FF33", "#FF8C33", "#33A1FF", "#8C33FF",
	"#FFC300", "#DAF7A6", "#FF5733", "#C70039", "#900C3F",
	"#581845", "#2ECC71", "#3498DB", "#9B59B6", "#34495E",
	"#16A085", "#27AE60", "#2980B9", "#8E44AD", "#2C3E50",
	"#F39C12", "#E74C3C", "#ECF0F1", "#95A5A6", "#7F8C8D",
	"#D35400", "#1ABC9C", "#2ECC71", "#3498DB", "#9B59B6",
	"#34495E", "#16A085", "#27AE60", "#2980B9", "#8E44AD",
}

// Demo returns a copy of the stock demo palette.
func Demo() Palette {
	colors := make([]string, len(demoColors))
	copy(colors, demoColors)
	return Palette{Name: "demo", Colors: colors}
}

// Load reads a YAML palette file and validates every color.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Palette{}, fmt.Errorf("palette %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes and validates YAML palette data.
func Parse(data []byte) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette: %w", err)
	}
	if len(p.Colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	for i, c := range p.Colors {
		norm, err := Normalize(c)
		if err != nil {
			return Palette{}, fmt.Errorf("color %d: %w", i, err)
		}
		p.Colors[i] = norm
	}
	p.Name = strings.TrimSpace(p.Name)
	return p, nil
}

// Normalize parses a hex color ("#RGB" or "#RRGGBB", '#' optional) and
// returns it as upper-case "#RRGGBB".
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s != "" && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrBadColor, s)
	}
	return strings.ToUpper(c.Hex()), nil
}

// Generate returns n colors spread around the hue wheel by the golden
// ratio, starting from a hue picked by rng (nil starts at 0).
func Generate(n int, rng *rand.Rand) Palette {
	const goldenRatio = 0.618033988749895
	hue := 0.0
	if rng != nil {
		hue = rng.Float64()
	}
	colors := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		c := colorful.Hsl(hue*360, 0.85, 0.55)
		colors = append(colors, strings.ToUpper(c.Clamped().Hex()))
		hue += goldenRatio
		hue -= float64(int(hue))
	}
	return Palette{Name: fmt.Sprintf("generated-%d", n), Colors: colors}
}

// Dim blends a color toward black by factor in [0, 1]; 0 leaves it
// unchanged. Unparseable input is returned as-is.
func Dim(hex string, factor float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return strings.ToUpper(c.BlendRgb(colorful.Color{}, factor).Clamped().Hex())
}
