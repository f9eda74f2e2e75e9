package app

import "time"

// TickMsg triggers one display frame.
type TickMsg time.Time

// PaletteMsg delivers a palette loaded off the update loop.
type PaletteMsg struct {
	Name   string
	Colors []string
	Err    error
}
