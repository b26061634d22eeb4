// Package hal is the platform layer: a framebuffer to draw into, key events to
// react to, and a line logger.
package hal

import "errors"

// ErrStop is returned by an app step function to end a runner cleanly.
var ErrStop = errors.New("hal: stop requested")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyHome
	KeyEnd
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "unknown"
	}
}

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown
// and a non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the menu app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
