package menu

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// recorder is a Backend that records every call as a line of text.
type recorder struct {
	w, h       int
	fontHeight int

	ops     []string
	clipped bool

	failText error
	failFill int // fail the n-th FillRect call (1-based), 0 never
	fills    int
	panicOn  string
	lines    []string
}

func newRecorder(w, h, fontHeight int) *recorder {
	return &recorder{w: w, h: h, fontHeight: fontHeight}
}

func (r *recorder) Width() int                 { return r.w }
func (r *recorder) Height() int                { return r.h }
func (r *recorder) FontHeight(font FontID) int { return r.fontHeight }

func (r *recorder) FillRect(x, y, w, h int, c color.RGBA) error {
	r.fills++
	if r.failFill > 0 && r.fills == r.failFill {
		return errors.New("fill failed")
	}
	r.ops = append(r.ops, fmt.Sprintf("rect %d,%d %dx%d %s", x, y, w, h, colorName(c)))
	return nil
}

func (r *recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) error {
	r.ops = append(r.ops, fmt.Sprintf("tri %d,%d %d,%d %d,%d %s", x0, y0, x1, y1, x2, y2, colorName(c)))
	return nil
}

func (r *recorder) SetClip(x, y, w, h int) {
	r.clipped = true
	r.ops = append(r.ops, fmt.Sprintf("clip %d,%d %dx%d", x, y, w, h))
}

func (r *recorder) ResetClip() {
	r.clipped = false
	r.ops = append(r.ops, "unclip")
}

func (r *recorder) DrawText(x, y int, s string, fg, bg color.RGBA, font FontID) error {
	if r.panicOn != "" && s == r.panicOn {
		panic("draw text")
	}
	if r.failText != nil {
		return r.failText
	}
	r.ops = append(r.ops, fmt.Sprintf("text %d,%d %q %s/%s f%d", x, y, s, colorName(fg), colorName(bg), font))
	return nil
}

func (r *recorder) WriteLineString(s string) { r.lines = append(r.lines, s) }

func (r *recorder) reset() { r.ops = nil }

// texts returns the strings drawn, in order.
func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.ops {
		if !strings.HasPrefix(op, "text ") {
			continue
		}
		start := strings.IndexByte(op, '"')
		end := strings.LastIndexByte(op, '"')
		out = append(out, op[start+1:end])
	}
	return out
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func colorName(c color.RGBA) string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case DarkGrey:
		return "grey"
	default:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
}
