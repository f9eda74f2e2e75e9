package app

import (
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"orbit-rings.klederson.com/internal/config"
	"orbit-rings.klederson.com/internal/orbit"
	"orbit-rings.klederson.com/internal/palette"
	"orbit-rings.klederson.com/internal/render"
	"orbit-rings.klederson.com/internal/ui"
)

// Settings is everything the CLI resolves before the program starts.
type Settings struct {
	Dataset     []string
	Source      string // palette name for the menu bar
	PalettePath string // reloaded with L when set
	Params      config.Params
	Options     orbit.Options
	Scale       float64 // pixels per column, <= 0 fits the window
	FPS         int
}

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	sched   *orbit.Scheduler
	display *orbit.Display
	history *FrameHistory
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	running     bool
	showTracks  bool
	cursor      int
	fps         int
	scale       float64
	source      string
	palettePath string
	err         error

	shared *shared
}

// New composes the dataset and mounts every ring.
func New(s Settings) (AppModel, error) {
	if s.FPS <= 0 {
		s.FPS = config.TargetFPS
	}
	sched := orbit.NewScheduler()
	display, err := orbit.NewDisplay(sched, s.Dataset, s.Params, s.Options)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{
		running:     true,
		showTracks:  true,
		fps:         s.FPS,
		scale:       s.Scale,
		source:      s.Source,
		palettePath: s.PalettePath,
		shared: &shared{
			sched:   sched,
			display: display,
			history: NewFrameHistory(config.HistorySize),
		},
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.running {
			m.shared.sched.Frame()
			m.shared.history.Mark(time.Time(msg))
		}
		return m, tickCmd(m.fps)

	case PaletteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = m.shared.display.SetDataset(msg.Colors)
		if m.err == nil {
			m.source = msg.Name
			m.cursor = 0
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.shared.display
	p := d.Params()

	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		d.Close()
		return m, tea.Quit

	case " ":
		m.running = !m.running
		m.shared.history.Reset()

	case "+", "=":
		p.CircleRadius += config.DefaultCircleItemRadius
		m.err = d.SetParams(p)

	case "-", "_":
		p.CircleRadius -= config.DefaultCircleItemRadius
		m.err = d.SetParams(p)

	case "]":
		p.CircleItemSpacing += 0.5
		m.err = d.SetParams(p)

	case "[":
		p.CircleItemSpacing -= 0.5
		m.err = d.SetParams(p)

	case "v", "V":
		opts := d.Options()
		opts.Speed = opts.Speed.Next()
		m.err = d.SetOptions(opts)

	case "r", "R":
		m.err = d.SetOptions(d.Options())

	case "t", "T":
		m.showTracks = !m.showTracks

	case "l", "L":
		if m.palettePath != "" {
			return m, loadPaletteCmd(m.palettePath)
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(d.Instances())-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		if n := len(d.Instances()); n > 0 {
			m.cursor = n - 1
		}
	}

	if n := len(d.Instances()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if m.err != nil {
		log.Printf("app: %v", m.err)
	}
	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	d := m.shared.display

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	panelW := m.width * 3 / 4
	if panelW < 30 {
		panelW = 30
	}
	listW := m.width - panelW
	if listW < 15 {
		listW = 15
		panelW = m.width - listW
	}

	menuBar := ui.RenderMenuBar(m.width, m.source, m.running)

	innerW := max(panelW-4, 5)
	innerH := max(bodyH-4, 3)
	frame := render.Frame{
		Rings:      d.Rings(),
		Placements: d.Snapshot(),
		ShowTracks: m.showTracks,
	}
	scale := m.scale
	if scale <= 0 {
		scale = render.FitScale(innerW, innerH, d.Extent())
	}
	content := render.Render(innerW, innerH, frame, scale)
	legend := render.RenderLegend(innerW, frame.Rings)
	ringPanel := ui.RenderRingPanel(panelW, bodyH, content, legend)

	ringList := ui.RenderRingList(d.Instances(), listW, bodyH, m.cursor)

	opts := d.Options()
	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Running: m.running,
		Items:   len(d.Dataset()),
		Rings:   len(frame.Rings),
		Speed:   opts.Speed.String(),
		Seed:    opts.Seed.String(),
		FPS:     m.shared.history.FPS(),
		Scale:   scale,
		Err:     m.err,
	})

	return ui.ComposeLayout(menuBar, ringPanel, ringList, statusBar)
}

// Close unmounts every ring. Safe to call after the program has exited.
func (m AppModel) Close() {
	m.shared.display.Close()
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func loadPaletteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := palette.Load(path)
		if err != nil {
			return PaletteMsg{Err: err}
		}
		return PaletteMsg{Name: p.Name, Colors: p.Colors}
	}
}

// NewRand returns a seeded source; seed 0 picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
