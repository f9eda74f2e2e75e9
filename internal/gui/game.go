// Package gui shows the rings in a desktop window with ebiten.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"orbit-rings.klederson.com/internal/config"
	"orbit-rings.klederson.com/internal/orbit"
	"orbit-rings.klederson.com/internal/palette"
	"orbit-rings.klederson.com/internal/render"
)

const margin = 24

var background = color.RGBA{R: 0x0B, G: 0x0B, B: 0x14, A: 0xFF}

// Game drives the rings from ebiten's update loop. Each Update is one
// display frame for the scheduler.
type Game struct {
	sched   *orbit.Scheduler
	display *orbit.Display
	source  string

	width, height int
	paused        bool
	showTracks    bool
	lastErr       error
}

// NewGame wraps a display whose rings are mounted on sched.
func NewGame(sched *orbit.Scheduler, display *orbit.Display, source string) *Game {
	return &Game{
		sched:      sched,
		display:    display,
		source:     source,
		width:      config.WindowWidth,
		height:     config.WindowHeight,
		showTracks: true,
	}
}

// Run opens the window and blocks until it is closed. Every ring is
// unmounted on return, whatever the exit path.
func Run(g *Game, title string) error {
	defer g.display.Close()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.showTracks = !g.showTracks
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		opts := g.display.Options()
		opts.Speed = opts.Speed.Next()
		g.lastErr = g.display.SetOptions(opts)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.lastErr = g.display.SetOptions(g.display.Options())
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.lastErr = g.openPaletteDialog()
	}

	if !g.paused {
		g.sched.Frame()
	}
	return nil
}

func (g *Game) openPaletteDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Palette"),
		zenity.FileFilters{{
			Name:     "Palette",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	p, err := palette.Load(filename)
	if err != nil {
		return err
	}
	if err := g.display.SetDataset(p.Colors); err != nil {
		return err
	}
	g.source = p.Name
	log.Printf("gui: loaded palette %s (%d colors)", p.Name, len(p.Colors))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cx := float32(g.width) / 2
	cy := float32(g.height) / 2
	scale := float32(render.WindowScale(g.width, g.height, g.display.Extent(), margin))

	if g.showTracks {
		for _, r := range g.display.Rings() {
			vector.StrokeCircle(screen, cx, cy, float32(r.Radius)*scale, 1, render.TrackRGBA(render.TrackColor(r)), true)
		}
	}
	for _, p := range g.display.Snapshot() {
		vector.DrawFilledCircle(screen,
			cx+float32(p.CX)*scale,
			cy+float32(p.CY)*scale,
			float32(p.Radius)*scale,
			render.ItemColor(p.Item), true)
	}

	opts := g.display.Options()
	status := fmt.Sprintf("%s  items %d  rings %d  speed %s  seed %s  %.0f fps",
		g.source, len(g.display.Dataset()), len(g.display.Rings()), opts.Speed, opts.Seed, ebiten.ActualTPS())
	if g.paused {
		status += "  [PAUSED]"
	}
	if g.lastErr != nil {
		status += "\n" + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "[Space] pause  [V] velocity  [R] reseed  [T] tracks  [O] open  [Q] quit", 12, g.height-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
