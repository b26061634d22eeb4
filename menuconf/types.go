package menuconf

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"tftmenu/menu"
)

// State is a menu.State that decodes from its name.
type State menu.State

func (s *State) UnmarshalText(text []byte) error {
	st, err := menu.ParseState(string(text))
	if err != nil {
		return err
	}
	*s = State(st)
	return nil
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(menu.State(s).String()), nil
}

// Color decodes "#rrggbb", "#rgb" or one of the palette names.
type Color color.RGBA

var namedColors = map[string]color.RGBA{
	"black":    menu.Black,
	"white":    menu.White,
	"darkgrey": menu.DarkGrey,
	"darkgray": menu.DarkGrey,
	"red":      {R: 0xFF, A: 0xFF},
	"green":    {G: 0xFF, A: 0xFF},
	"blue":     {B: 0xFF, A: 0xFF},
	"yellow":   {R: 0xFF, G: 0xFF, A: 0xFF},
	"cyan":     {G: 0xFF, B: 0xFF, A: 0xFF},
	"magenta":  {R: 0xFF, B: 0xFF, A: 0xFF},
}

func (c *Color) UnmarshalText(text []byte) error {
	rgba, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = Color(rgba)
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

func (c *Color) or(def color.RGBA) color.RGBA {
	if c == nil {
		return def
	}
	return color.RGBA(*c)
}

// ParseColor parses a color name or hex triplet into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
