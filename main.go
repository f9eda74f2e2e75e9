package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"orbit-rings.klederson.com/internal/app"
	"orbit-rings.klederson.com/internal/config"
	"orbit-rings.klederson.com/internal/gui"
	"orbit-rings.klederson.com/internal/orbit"
	"orbit-rings.klederson.com/internal/palette"
)

var (
	flagRadius      float64
	flagSpacing     float64
	flagItemRadius  float64
	flagItemSpacing float64
	flagPalette     string
	flagDemo        bool
	flagGenerate    int
	flagSpeed       string
	flagSeedPolicy  string
	flagRandSeed    int64
	flagFPS         int
	flagScale       float64
	flagWindow      bool
	flagLog         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbit-rings",
		Short: "Orbit Rings - concentric rings of colored dots rotating in your terminal",
		Long: `Orbit Rings lays a list of colors out on concentric rings and slowly
rotates every dot. Each ring holds as many dots as fit around it; the rest
move outward to the next ring.

With no palette the bundled 40-color demo set is shown.
Use --window to draw real circles in a desktop window instead of the terminal.`,
		SilenceUsage: true,
		RunE:         run,
	}

	d := config.DefaultParams()
	rootCmd.Flags().Float64Var(&flagRadius, "radius", d.CircleRadius, "Radius of the innermost ring in pixels")
	rootCmd.Flags().Float64Var(&flagSpacing, "spacing", d.CircleSpacing, "Radius increment per ring in pixels")
	rootCmd.Flags().Float64Var(&flagItemRadius, "item-radius", d.CircleItemRadius, "Radius of each dot in pixels")
	rootCmd.Flags().Float64Var(&flagItemSpacing, "item-spacing", d.CircleItemSpacing, "Density divisor: slots around a ring are divided by this")
	rootCmd.Flags().StringVar(&flagPalette, "palette", "", "YAML palette file (name + colors list)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Use the demo palette with its compact geometry (radius 40, item spacing 2.5)")
	rootCmd.Flags().IntVar(&flagGenerate, "generate", 0, "Generate N colors instead of loading a palette")
	rootCmd.Flags().StringVar(&flagSpeed, "speed", orbit.SpeedFixed.String(), "Speed policy: fixed, forward or bidirectional")
	rootCmd.Flags().StringVar(&flagSeedPolicy, "seed-policy", orbit.SeedEager.String(), "When dots are laid out: eager (at start) or lazy (first frame)")
	rootCmd.Flags().Int64Var(&flagRandSeed, "rand-seed", 0, "Random seed for speeds and generated palettes (0 = time based)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", config.TargetFPS, "Terminal frames per second")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 0, "Pixels per terminal column (0 = fit to window)")
	rootCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal UI")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write debug log to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagLog != "" {
		f, err := tea.LogToFile(flagLog, "orbit")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else if !flagWindow {
		// Stray log lines would tear the terminal UI
		log.SetOutput(io.Discard)
	}

	speed, err := orbit.ParseSpeedPolicy(flagSpeed)
	if err != nil {
		return err
	}
	seed, err := orbit.ParseSeedPolicy(flagSeedPolicy)
	if err != nil {
		return err
	}
	rng := app.NewRand(flagRandSeed)

	pal, params, err := resolveDataset(cmd, rng)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	settings := app.Settings{
		Dataset:     pal.Colors,
		Source:      pal.Name,
		PalettePath: flagPalette,
		Params:      params,
		Options:     orbit.Options{Speed: speed, Seed: seed, Rand: rng},
		Scale:       flagScale,
		FPS:         flagFPS,
	}
	log.Printf("starting: palette=%s items=%d speed=%s seed=%s", pal.Name, len(pal.Colors), speed, seed)

	if flagWindow {
		return runWindow(settings)
	}

	model, err := app.New(settings)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(flagFPS),
	)
	_, err = p.Run()
	return err
}

func runWindow(s app.Settings) error {
	sched := orbit.NewScheduler()
	display, err := orbit.NewDisplay(sched, s.Dataset, s.Params, s.Options)
	if err != nil {
		return err
	}
	return gui.Run(gui.NewGame(sched, display, s.Source), fmt.Sprintf("%s v%s", config.AppName, config.AppVersion))
}

// resolveDataset picks the items and the geometry. A palette file wins
// over --generate; with neither, the demo palette is used. --demo switches
// to the compact demo geometry unless those flags were set explicitly.
func resolveDataset(cmd *cobra.Command, rng *rand.Rand) (palette.Palette, config.Params, error) {
	params := config.Params{
		CircleRadius:      flagRadius,
		CircleSpacing:     flagSpacing,
		CircleItemRadius:  flagItemRadius,
		CircleItemSpacing: flagItemSpacing,
	}
	if flagDemo {
		if !cmd.Flags().Changed("radius") {
			params.CircleRadius = config.DemoCircleRadius
		}
		if !cmd.Flags().Changed("item-spacing") {
			params.CircleItemSpacing = config.DemoCircleItemSpacing
		}
	}

	switch {
	case flagPalette != "":
		p, err := palette.Load(flagPalette)
		return p, params, err
	case flagGenerate > 0:
		return palette.Generate(flagGenerate, rng), params, nil
	default:
		return palette.Demo(), params, nil
	}
}
