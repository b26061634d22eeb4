// Command menulint checks menu definition files and reports how they lay out
// on a display of the given size.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"

	"tftmenu/fonts"
	"tftmenu/hal"
	"tftmenu/menu"
	"tftmenu/menuconf"
)

func main() {
	var (
		width   = flag.Int("w", hal.DefaultWidth, "Display width in pixels.")
		height  = flag.Int("h", hal.DefaultHeight, "Display height in pixels.")
		verbose = flag.Bool("v", false, "List every item.")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fatalf("usage: menulint [-w 240] [-h 320] [-v] menu.toml...")
	}

	failed := false
	for _, path := range flag.Args() {
		if err := lint(os.Stdout, path, *width, *height, *verbose); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func lint(w io.Writer, path string, width, height int, verbose bool) error {
	def, err := menuconf.Load(path)
	if err != nil {
		return err
	}
	b := &layoutBackend{w: width, h: height, fonts: fonts.Default()}
	m, err := def.Build(b)
	if err != nil {
		return err
	}
	if err := m.Show(); err != nil {
		return err
	}

	if m.VisibleRows() == 0 {
		return fmt.Errorf("no item rows fit %dx%d (title %dpx, item %dpx)",
			width, height, m.TitleStyle().Height(), m.ItemStyle().Height())
	}

	_, _ = fmt.Fprintf(w, "%s: %q %d items, %d of %d rows at %dx%d, selection %d %q\n",
		path, m.Title(), m.Len(), m.VisibleRows(), m.Len(), width, height, m.Selected(), m.SelectedText())
	if verbose {
		for i := 0; i < m.Len(); i++ {
			label, st, _ := m.Item(i)
			_, _ = fmt.Fprintf(w, "  %2d %-8s %s\n", i, st, label)
		}
	}
	return nil
}

// layoutBackend measures with the real font set and discards all drawing.
type layoutBackend struct {
	w, h  int
	fonts *fonts.Registry
}

func (b *layoutBackend) Width() int  { return b.w }
func (b *layoutBackend) Height() int { return b.h }

func (b *layoutBackend) FontHeight(font menu.FontID) int {
	face, ok := b.fonts.Face(font)
	if !ok {
		return 0
	}
	return int(face.Height)
}

func (b *layoutBackend) FillRect(x, y, w, h int, c color.RGBA) error { return nil }

func (b *layoutBackend) FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) error {
	return nil
}

func (b *layoutBackend) SetClip(x, y, w, h int) {}
func (b *layoutBackend) ResetClip()             {}

func (b *layoutBackend) DrawText(x, y int, s string, fg, bg color.RGBA, font menu.FontID) error {
	return nil
}
