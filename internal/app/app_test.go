package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"orbit-rings.klederson.com/internal/config"
	"orbit-rings.klederson.com/internal/orbit"
	"orbit-rings.klederson.com/internal/palette"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m, err := New(Settings{
		Dataset: palette.Demo().Colors,
		Source:  "demo",
		Params:  config.DemoParams(),
		Options: orbit.Options{Rand: NewRand(1)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickAdvancesRings(t *testing.T) {
	m := newTestModel(t)
	first := m.shared.display.Instances()[0]
	before, _ := first.Driver().Angle(0)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not reschedule")
	}
	after, _ := first.Driver().Angle(0)
	if after == before {
		t.Error("tick did not advance the first ring")
	}
}

func TestPauseStopsAdvancing(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, key(" "))
	if m.running {
		t.Fatal("space did not pause")
	}
	first := m.shared.display.Instances()[0]
	frames := first.Driver().Frames()
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("paused tick should keep the loop alive")
	}
	if first.Driver().Frames() != frames {
		t.Error("paused model advanced a ring")
	}
}

func TestQuitUnmountsRings(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce tea.QuitMsg")
	}
	if m.shared.sched.Active() != 0 {
		t.Errorf("%d tasks still scheduled after quit", m.shared.sched.Active())
	}
	m.Close() // idempotent after quit
}

func TestRadiusKeysRecompose(t *testing.T) {
	m := newTestModel(t)
	old := m.shared.display.Instances()
	m, _ = update(t, m, key("+"))
	if got := m.shared.display.Params().CircleRadius; got != config.DemoCircleRadius+config.DefaultCircleItemRadius {
		t.Errorf("radius = %v", got)
	}
	if old[0].Mounted() {
		t.Error("old ring still mounted after recompose")
	}
	if m.shared.sched.Active() != len(m.shared.display.Instances()) {
		t.Error("scheduled tasks out of sync with rings")
	}
}

func TestInvalidChangeKeepsRings(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, key("["))
	}
	if !errors.Is(m.err, config.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", m.err)
	}
	if got := m.shared.display.Params().CircleItemSpacing; got <= 0 {
		t.Errorf("invalid spacing %v applied", got)
	}
	if len(m.shared.display.Instances()) == 0 {
		t.Error("rings lost after rejected change")
	}
}

func TestSpeedCycle(t *testing.T) {
	m := newTestModel(t)
	want := []orbit.SpeedPolicy{orbit.SpeedForward, orbit.SpeedBidirectional, orbit.SpeedFixed}
	for _, w := range want {
		m, _ = update(t, m, key("v"))
		if got := m.shared.display.Options().Speed; got != w {
			t.Fatalf("speed = %v, want %v", got, w)
		}
	}
}

func TestPaletteReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cool.yaml")
	if err := os.WriteFile(path, []byte("colors: [\"#00FFFF\", \"#0000FF\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := newTestModel(t)
	m.palettePath = path

	m, cmd := update(t, m, key("l"))
	if cmd == nil {
		t.Fatal("reload returned no command")
	}
	m, _ = update(t, m, cmd())
	if m.err != nil {
		t.Fatalf("reload error: %v", m.err)
	}
	if m.source != "cool" || len(m.shared.display.Dataset()) != 2 {
		t.Errorf("source=%q items=%d", m.source, len(m.shared.display.Dataset()))
	}

	m, _ = update(t, m, PaletteMsg{Err: palette.ErrEmptyPalette})
	if !errors.Is(m.err, palette.ErrEmptyPalette) {
		t.Errorf("err = %v", m.err)
	}
}

func TestCursorClamped(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 50; i++ {
		m, _ = update(t, m, key("j"))
	}
	if want := len(m.shared.display.Instances()) - 1; m.cursor != want {
		t.Errorf("cursor = %d, want %d", m.cursor, want)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if m.cursor != 0 {
		t.Errorf("cursor after home = %d", m.cursor)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("view before size = %q", got)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.View()
	if !strings.Contains(out, config.AppName) || !strings.Contains(out, "RINGS [") {
		t.Error("view missing menu bar or ring list")
	}
}

func TestFrameHistory(t *testing.T) {
	h := NewFrameHistory(4)
	if h.FPS() != 0 {
		t.Fatal("empty history reports a rate")
	}
	start := time.Unix(0, 0)
	for i := 0; i <= 10; i++ {
		h.Mark(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	if h.Len() != 4 {
		t.Errorf("Len = %d, want 4", h.Len())
	}
	if fps := h.FPS(); fps < 49.9 || fps > 50.1 {
		t.Errorf("FPS = %v, want 50", fps)
	}

	h.Reset()
	h.Mark(start.Add(time.Hour))
	if fps := h.FPS(); fps < 49.9 || fps > 50.1 {
		t.Errorf("pause counted as a frame: FPS = %v", fps)
	}
}
