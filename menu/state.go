package menu

import (
	"fmt"
	"image/color"
	"strings"
)

// State is the selection state of a single item.
type State uint8

const (
	Normal State = iota
	Selected
	Disabled
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Selected:
		return "selected"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// ParseState accepts the names returned by State.String.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "none":
		return Normal, nil
	case "selected":
		return Selected, nil
	case "disabled":
		return Disabled, nil
	default:
		return Normal, fmt.Errorf("unknown item state %q", s)
	}
}

// Palette colors used by the default styles.
var (
	Black    = color.RGBA{A: 0xFF}
	White    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DarkGrey = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

// ColorPair is the background/foreground combination for one state.
type ColorPair struct {
	Background color.RGBA
	Foreground color.RGBA
}

// StateColors maps every State to a value. All three states are always defined.
type StateColors[T any] struct {
	Normal   T
	Selected T
	Disabled T
}

// For returns the value for s. Unknown states fall back to Normal.
func (c StateColors[T]) For(s State) T {
	switch s {
	case Selected:
		return c.Selected
	case Disabled:
		return c.Disabled
	default:
		return c.Normal
	}
}

func defaultColors() StateColors[ColorPair] {
	return StateColors[ColorPair]{
		Normal:   ColorPair{Background: Black, Foreground: White},
		Selected: ColorPair{Background: White, Foreground: Black},
		Disabled: ColorPair{Background: Black, Foreground: DarkGrey},
	}
}

func defaultBorderColors() StateColors[color.RGBA] {
	return StateColors[color.RGBA]{
		Normal:   Black,
		Selected: White,
		Disabled: Black,
	}
}
