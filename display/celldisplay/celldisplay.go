// Package celldisplay draws menus onto a character terminal through tcell.
// Every cell is one pixel of the menu's coordinate space and every font is
// one cell tall.
package celldisplay

import (
	"image"
	"image/color"

	"tftmenu/menu"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	arrowUp   = '▲'
	arrowDown = '▼'
)

var (
	_ menu.Backend     = (*Display)(nil)
	_ menu.ArrowDrawer = (*Display)(nil)
)

type Display struct {
	screen tcell.Screen
	clip   image.Rectangle
}

func New(screen tcell.Screen) *Display {
	d := &Display{screen: screen}
	d.ResetClip()
	return d
}

func (d *Display) Screen() tcell.Screen { return d.screen }

func (d *Display) Width() int {
	w, _ := d.screen.Size()
	return w
}

func (d *Display) Height() int {
	_, h := d.screen.Size()
	return h
}

func (d *Display) FontHeight(menu.FontID) int { return 1 }

func (d *Display) bounds() image.Rectangle {
	w, h := d.screen.Size()
	return image.Rect(0, 0, w, h)
}

func (d *Display) SetClip(x, y, w, h int) {
	d.clip = image.Rect(x, y, x+w, y+h).Intersect(d.bounds())
}

func (d *Display) ResetClip() { d.clip = d.bounds() }

func (d *Display) FillRect(x, y, w, h int, c color.RGBA) error {
	r := image.Rect(x, y, x+w, y+h).Intersect(d.clip)
	st := tcell.StyleDefault.Background(rgb(c))
	for cy := r.Min.Y; cy < r.Max.Y; cy++ {
		for cx := r.Min.X; cx < r.Max.X; cx++ {
			d.screen.SetContent(cx, cy, ' ', nil, st)
		}
	}
	return nil
}

// FillTriangle paints every cell whose center lies inside the triangle.
func (d *Display) FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) error {
	r := image.Rect(min(x0, x1, x2), min(y0, y1, y2), max(x0, x1, x2)+1, max(y0, y1, y2)+1).Intersect(d.clip)
	st := tcell.StyleDefault.Background(rgb(c))
	for cy := r.Min.Y; cy < r.Max.Y; cy++ {
		for cx := r.Min.X; cx < r.Max.X; cx++ {
			if inTriangle(cx, cy, x0, y0, x1, y1, x2, y2) {
				d.screen.SetContent(cx, cy, ' ', nil, st)
			}
		}
	}
	return nil
}

// DrawText writes s from (x, y). Wide runes take two cells and are dropped
// when they do not fit the clip region entirely.
func (d *Display) DrawText(x, y int, s string, fg, bg color.RGBA, _ menu.FontID) error {
	st := tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg))
	cx := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if !d.visible(cx, y) || !d.visible(cx+w-1, y) {
			cx += w
			continue
		}
		d.screen.SetContent(cx, y, r, nil, st)
		cx += w
	}
	return nil
}

// DrawArrow puts a single arrow glyph at (x, y).
func (d *Display) DrawArrow(x, y int, up bool, fg, bg color.RGBA) error {
	if !d.visible(x, y) {
		return nil
	}
	r := arrowDown
	if up {
		r = arrowUp
	}
	d.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg)))
	return nil
}

// Show flushes pending changes to the terminal.
func (d *Display) Show() { d.screen.Show() }

func (d *Display) visible(x, y int) bool {
	return image.Pt(x, y).In(d.clip)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func inTriangle(px, py, x0, y0, x1, y1, x2, y2 int) bool {
	d0 := edge(px, py, x0, y0, x1, y1)
	d1 := edge(px, py, x1, y1, x2, y2)
	d2 := edge(px, py, x2, y2, x0, y0)
	neg := d0 < 0 || d1 < 0 || d2 < 0
	pos := d0 > 0 || d1 > 0 || d2 > 0
	return !(neg && pos)
}

func edge(px, py, ax, ay, bx, by int) int {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}
