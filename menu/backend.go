package menu

import "image/color"

// FontID selects a font known to the backend.
type FontID uint8

// Metrics reports the device and font dimensions used for row layout.
type Metrics interface {
	Width() int
	Height() int
	FontHeight(font FontID) int
}

// Backend is the drawing surface the menu renders onto.
//
// It is borrowed, never owned: the caller keeps it alive for the lifetime of the menu.
type Backend interface {
	Metrics

	FillRect(x, y, w, h int, c color.RGBA) error
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) error

	// SetClip restricts subsequent drawing to the given rectangle.
	SetClip(x, y, w, h int)
	// ResetClip restores full-device drawing bounds.
	ResetClip()

	// DrawText draws s with its top-left corner at (x, y).
	DrawText(x, y int, s string, fg, bg color.RGBA, font FontID) error
}

// Logger receives trace lines. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}
