package menu

import "image/color"

// Unset marks a text viewport field that Init computes.
const Unset = -1

// DefaultFont is the font a RowStyle uses until SetFont is called.
const DefaultFont FontID = 2

// Insets holds per-side thickness in pixels.
type Insets struct {
	Top, Left, Bottom, Right int
}

func (i Insets) any() bool {
	return i.Top > 0 || i.Left > 0 || i.Bottom > 0 || i.Right > 0
}

// Rect is a rectangle relative to a row origin.
type Rect struct {
	X, Y, W, H int
}

// ArrowDrawer is implemented by backends that render scroll indicators natively,
// e.g. character displays where a triangle is smaller than one cell.
type ArrowDrawer interface {
	DrawArrow(x, y int, up bool, fg, bg color.RGBA) error
}

// RowStyle is the visual contract for one class of row (title or item).
//
// Setters only store configuration. Init turns it into layout, and the Draw
// methods render through the Backend passed to them.
type RowStyle struct {
	font     FontID
	margins  Insets
	border   Insets
	viewport Rect

	colors       StateColors[ColorPair]
	borderColors StateColors[color.RGBA]

	// Computed by Init.
	text   Rect
	width  int
	height int
}

// NewRowStyle returns a style with the default configuration.
func NewRowStyle() RowStyle {
	var s RowStyle
	s.Reset()
	return s
}

// Reset restores the default configuration and drops the computed layout.
func (s *RowStyle) Reset() {
	*s = RowStyle{
		font:         DefaultFont,
		viewport:     Rect{X: Unset, Y: Unset, W: Unset, H: Unset},
		colors:       defaultColors(),
		borderColors: defaultBorderColors(),
	}
}

// SetFont selects the backend font used for the row text.
func (s *RowStyle) SetFont(font FontID) { s.font = font }

// SetMargins sets the space between the row's outer box and its border.
func (s *RowStyle) SetMargins(top, left, bottom, right int) {
	s.margins = Insets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// SetBorder sets the border thickness per side. An all-zero border is not drawn.
func (s *RowStyle) SetBorder(top, left, bottom, right int) {
	s.border = Insets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// SetTextViewport sets the text rectangle relative to the row origin.
// Fields passed as Unset are computed by Init.
func (s *RowStyle) SetTextViewport(x, y, w, h int) {
	s.viewport = Rect{X: x, Y: y, W: w, H: h}
}

// SetColors sets the background and foreground for each item state.
func (s *RowStyle) SetColors(normal, selected, disabled ColorPair) {
	s.colors = StateColors[ColorPair]{Normal: normal, Selected: selected, Disabled: disabled}
}

// SetBorderColors sets the border color for each item state.
func (s *RowStyle) SetBorderColors(normal, selected, disabled color.RGBA) {
	s.borderColors = StateColors[color.RGBA]{Normal: normal, Selected: selected, Disabled: disabled}
}

// Font returns the configured font.
func (s *RowStyle) Font() FontID { return s.font }

// Margins returns the outer margins.
func (s *RowStyle) Margins() Insets { return s.margins }

// Border returns the border thicknesses.
func (s *RowStyle) Border() Insets { return s.border }

// Colors returns the per-state background and foreground pairs.
func (s *RowStyle) Colors() StateColors[ColorPair] { return s.colors }

// BorderColors returns the per-state border colors.
func (s *RowStyle) BorderColors() StateColors[color.RGBA] { return s.borderColors }

// Init computes unset viewport fields and the row size. Calling it again
// recomputes from the configuration.
func (s *RowStyle) Init(m Metrics) {
	deviceW := m.Width()

	vp := s.viewport
	if vp.H == Unset {
		vp.H = m.FontHeight(s.font)
	}
	if vp.W == Unset {
		vp.W = deviceW - s.margins.Left - s.margins.Right - s.border.Left - s.border.Right
	}
	if vp.X == Unset {
		vp.X = s.margins.Left + s.border.Left
	}
	if vp.Y == Unset {
		vp.Y = s.margins.Top + s.border.Top
	}

	s.text = vp
	s.height = s.margins.Top + s.margins.Bottom + s.border.Top + s.border.Bottom + vp.H
	s.width = deviceW
}

// Height returns the row height computed by Init.
func (s *RowStyle) Height() int { return s.height }

// Width returns the row width computed by Init.
func (s *RowStyle) Width() int { return s.width }

// Viewport returns the text rectangle computed by Init.
func (s *RowStyle) Viewport() Rect { return s.text }

// Clear fills the whole row rectangle at (x, y) with c.
func (s *RowStyle) Clear(b Backend, x, y int, c color.RGBA) error {
	return b.FillRect(x, y, s.width, s.height, c)
}

// DrawAt renders one row: border, background, then text clipped to the viewport.
// The clip region is reset on every return path.
func (s *RowStyle) DrawAt(b Backend, x, y int, text string, st State) error {
	if s.border.any() {
		if err := b.FillRect(x, y, s.width, s.height, s.borderColors.For(st)); err != nil {
			return err
		}
	}

	pair := s.colors.For(st)
	innerW := s.width - s.border.Left - s.border.Right
	innerH := s.height - s.border.Top - s.border.Bottom
	if err := b.FillRect(x+s.border.Left, y+s.border.Top, innerW, innerH, pair.Background); err != nil {
		return err
	}

	tx := x + s.text.X
	ty := y + s.text.Y
	b.SetClip(tx, ty, s.text.W, s.text.H)
	defer b.ResetClip()
	return b.DrawText(tx, ty, text, pair.Foreground, pair.Background, s.font)
}

// DrawUpArrow overlays an upward scroll indicator at the right edge of the viewport.
func (s *RowStyle) DrawUpArrow(b Backend, x, y int, st State) error {
	return s.drawArrow(b, x, y, st, true)
}

// DrawDownArrow overlays a downward scroll indicator at the right edge of the viewport.
func (s *RowStyle) DrawDownArrow(b Backend, x, y int, st State) error {
	return s.drawArrow(b, x, y, st, false)
}

func (s *RowStyle) drawArrow(b Backend, x, y int, st State, up bool) error {
	pair := s.colors.For(st)
	size := s.text.H * 3 / 4
	top := y + s.text.Y + (s.text.H-size)/2
	// Right edge is the viewport's last column. For the computed viewport that
	// is the row width inset by the right margin and border; an explicit
	// viewport places the arrow at its own right edge.
	right := x + s.text.X + s.text.W - 1

	if ad, ok := b.(ArrowDrawer); ok {
		return ad.DrawArrow(right, top, up, pair.Foreground, pair.Background)
	}
	if size <= 0 {
		return nil
	}

	bottom := top + size - 1
	left := right - size + 1
	center := (left + right) / 2
	if err := b.FillRect(left-2, top, size+2, size, pair.Background); err != nil {
		return err
	}
	if up {
		return b.FillTriangle(left, bottom, right, bottom, center, top, pair.Foreground)
	}
	return b.FillTriangle(left, top, right, top, center, bottom, pair.Foreground)
}
