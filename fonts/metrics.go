package fonts

import (
	"errors"
	"fmt"

	"tinygo.org/x/tinyfont"
)

// LineMetrics derives the glyph bounding box of f over printable ASCII.
//
// It returns:
//   - height: distance between the highest and lowest inked rows
//   - offset: baseline offset from the top of that box
func LineMetrics(f tinyfont.Fonter) (height int16, offset int16, err error) {
	if f == nil {
		return 0, 0, errors.New("nil font")
	}

	minY := 0
	maxY := 0
	first := true
	for r := rune(0x21); r <= 0x7e; r++ {
		g := f.GetGlyph(r)
		if g == nil {
			continue
		}
		info := g.Info()
		if info.Height == 0 {
			continue
		}
		yoff := int(info.YOffset)
		h := int(info.Height)
		if first {
			minY = yoff
			maxY = yoff + h
			first = false
			continue
		}
		if yoff < minY {
			minY = yoff
		}
		if yoff+h > maxY {
			maxY = yoff + h
		}
	}
	if first {
		return 0, 0, errors.New("no glyphs")
	}

	h := maxY - minY
	off := -minY
	if h <= 0 || off < 0 {
		return 0, 0, fmt.Errorf("invalid metrics: height=%d offset=%d", h, off)
	}
	return int16(h), int16(off), nil
}

// RowMetrics returns the line height and baseline offset used to place text by
// its top-left corner.
//
// The line height is the font's YAdvance. The baseline is placed so that any
// clipping is split evenly between the top and the bottom of the line.
func RowMetrics(f tinyfont.Fonter) (height int16, baseline int16, err error) {
	bboxHeight, bboxOffset, err := LineMetrics(f)
	if err != nil {
		return 0, 0, err
	}

	h := int16(f.GetYAdvance())
	if h <= 0 {
		h = bboxHeight
	}

	minY := -bboxOffset
	maxY := bboxHeight - bboxOffset

	off := (h - maxY - minY) / 2
	if off < 0 {
		off = 0
	}
	if off > h {
		off = h
	}
	return h, off, nil
}
