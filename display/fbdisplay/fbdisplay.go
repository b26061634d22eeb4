// Package fbdisplay draws menus into a hal.Framebuffer.
//
// Display implements drivers.Displayer, so tinyfont and tinydraw render
// straight into the framebuffer, and menu.Backend on top of that.
package fbdisplay

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"tftmenu/fonts"
	"tftmenu/hal"
	"tftmenu/menu"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// ErrUnsupportedFormat is returned by New for non-RGB565 framebuffers.
var ErrUnsupportedFormat = errors.New("fbdisplay: unsupported pixel format")

var (
	_ drivers.Displayer = (*Display)(nil)
	_ menu.Backend      = (*Display)(nil)
)

type Display struct {
	fb    hal.Framebuffer
	fonts *fonts.Registry
	clip  image.Rectangle
}

// New wraps fb. A nil registry selects fonts.Default.
func New(fb hal.Framebuffer, reg *fonts.Registry) (*Display, error) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrUnsupportedFormat
	}
	if reg == nil {
		reg = fonts.Default()
	}
	d := &Display{fb: fb, fonts: reg}
	d.ResetClip()
	return d, nil
}

func (d *Display) bounds() image.Rectangle {
	return image.Rect(0, 0, d.fb.Width(), d.fb.Height())
}

func (d *Display) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

// SetPixel writes c at (x, y) when it falls inside the clip region.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(d.clip) {
		return
	}
	buf := d.fb.Buffer()
	off := int(y)*d.fb.StrideBytes() + int(x)*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := hal.RGB565(c)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display presents the framebuffer.
func (d *Display) Display() error {
	return d.fb.Present()
}

func (d *Display) Width() int  { return d.fb.Width() }
func (d *Display) Height() int { return d.fb.Height() }

// FontHeight returns the line height of font, or 0 when no face resolves.
func (d *Display) FontHeight(font menu.FontID) int {
	face, ok := d.fonts.Face(font)
	if !ok {
		return 0
	}
	return int(face.Height)
}

func (d *Display) FillRect(x, y, w, h int, c color.RGBA) error {
	r := image.Rect(x, y, x+w, y+h).Intersect(d.clip)
	if r.Empty() {
		return nil
	}

	pixel := hal.RGB565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *Display) FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) error {
	tinydraw.FilledTriangle(d, int16(x0), int16(y0), int16(x1), int16(y1), int16(x2), int16(y2), c)
	return nil
}

// SetClip restricts drawing to the given rectangle, intersected with the screen.
func (d *Display) SetClip(x, y, w, h int) {
	d.clip = image.Rect(x, y, x+w, y+h).Intersect(d.bounds())
}

func (d *Display) ResetClip() {
	d.clip = d.bounds()
}

// DrawText renders s with its line box's top-left corner at (x, y). Only the
// foreground is drawn; callers fill the background first.
func (d *Display) DrawText(x, y int, s string, fg, bg color.RGBA, font menu.FontID) error {
	face, ok := d.fonts.Face(font)
	if !ok {
		return fmt.Errorf("fbdisplay: no face for font %d", font)
	}
	tinyfont.WriteLine(d, face.Font, int16(x), int16(y)+face.Baseline, s, fg)
	return nil
}
