// Package menu implements a vertically scrolling, single-selection menu for
// small pixel or character displays.
//
// A Menu owns an ordered list of items and a window of visible rows. Show lays
// the rows out once per session and draws them; Up and Down move the selection,
// skipping disabled items, and redraw the window.
package menu

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mattn/go-runewidth"
)

const (
	DefaultCapacity   = 15
	DefaultTitleLimit = 15
	DefaultLabelLimit = 15
)

// ErrFull is returned by AddItem when the menu holds Capacity items.
var ErrFull = errors.New("menu: item capacity reached")

type item struct {
	label string
	state State
}

// Option configures a Menu at construction.
type Option func(*Menu)

// WithCapacity bounds the number of items. n <= 0 makes the list unbounded.
func WithCapacity(n int) Option {
	return func(m *Menu) { m.capacity = n }
}

// WithTitleLimit truncates titles to n display cells. n <= 0 disables truncation.
func WithTitleLimit(n int) Option {
	return func(m *Menu) { m.titleLimit = n }
}

// WithLabelLimit truncates item labels to n display cells. n <= 0 disables truncation.
func WithLabelLimit(n int) Option {
	return func(m *Menu) { m.labelLimit = n }
}

// WithLogger enables trace lines for selection changes.
func WithLogger(l Logger) Option {
	return func(m *Menu) { m.log = l }
}

// Menu is the selection and scroll state machine.
//
// It is not safe for concurrent use.
type Menu struct {
	b   Backend
	log Logger

	capacity   int
	titleLimit int
	labelLimit int

	title    string
	items    []item
	selected int

	// Layout, computed once per session by Show.
	initialized bool
	titleHeight int
	itemHeight  int
	rows        int
	start       int

	titleStyle RowStyle
	itemStyle  RowStyle
}

// New returns an empty menu drawing onto b.
func New(b Backend, opts ...Option) *Menu {
	m := &Menu{
		b:          b,
		capacity:   DefaultCapacity,
		titleLimit: DefaultTitleLimit,
		labelLimit: DefaultLabelLimit,
		selected:   -1,
		titleStyle: NewRowStyle(),
		itemStyle:  NewRowStyle(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.capacity > 0 {
		m.items = make([]item, 0, m.capacity)
	}
	return m
}

// TitleStyle returns the style of the title row. Changes take effect on the
// first Show after construction or Reset.
func (m *Menu) TitleStyle() *RowStyle { return &m.titleStyle }

// ItemStyle returns the style shared by all item rows.
func (m *Menu) ItemStyle() *RowStyle { return &m.itemStyle }

// SetTitle sets the title, truncated to the title limit.
func (m *Menu) SetTitle(title string) {
	m.title = truncate(title, m.titleLimit)
}

// AddItem appends an item and returns its index. Adding with state Selected
// makes the new item the selection; a later Selected add wins.
func (m *Menu) AddItem(label string, st State) (int, error) {
	if m.capacity > 0 && len(m.items) >= m.capacity {
		return -1, ErrFull
	}

	idx := len(m.items)
	m.items = append(m.items, item{label: truncate(label, m.labelLimit), state: st})
	if st == Selected {
		m.logf("menu: preselect %d %q", idx, m.items[idx].label)
		m.selected = idx
	}
	return idx, nil
}

// Reset empties the menu, drops the cached layout and restores both styles
// to their defaults.
func (m *Menu) Reset() {
	m.items = m.items[:0]
	m.selected = -1
	m.title = ""

	m.initialized = false
	m.titleHeight = 0
	m.itemHeight = 0
	m.rows = 0
	m.start = 0

	m.titleStyle.Reset()
	m.itemStyle.Reset()
}

// Show lays the menu out on first use, scrolls a preselected item into view
// and draws the title and every visible row.
func (m *Menu) Show() error {
	m.layout()

	if m.rows > 0 && m.selected >= m.rows {
		m.start = m.selected - m.rows + 1
	}

	if err := m.titleStyle.DrawAt(m.b, 0, 0, m.title, Normal); err != nil {
		return fmt.Errorf("draw title: %w", err)
	}
	return m.redraw()
}

// Up moves the selection to the nearest enabled item above it. It is a no-op
// at the top of the list, when only disabled items lie above, or before Show.
func (m *Menu) Up() error {
	if !m.initialized || m.selected <= 0 {
		return nil
	}

	next := m.selected - 1
	for next >= 0 && m.items[next].state == Disabled {
		next--
	}
	if next < 0 {
		return nil
	}

	// The window moves one row per call even when disabled items were skipped.
	if next < m.start {
		m.start--
	}
	m.moveTo(next)
	return m.redraw()
}

// Down moves the selection to the nearest enabled item below it. With no
// selection it scans from the first item, which reaches enabled items below a
// fully disabled window. It is a no-op at the end of the list, when only
// disabled items lie below, when no row fits, or before Show.
func (m *Menu) Down() error {
	if !m.initialized || m.rows == 0 || m.selected >= len(m.items)-1 {
		return nil
	}

	next := m.selected + 1
	for next < len(m.items) && m.items[next].state == Disabled {
		next++
	}
	if next >= len(m.items) {
		return nil
	}

	if next >= m.start+m.rows {
		m.start++
	}
	m.moveTo(next)
	return m.redraw()
}

// Clear blanks the title row and every row slot of the window with c.
func (m *Menu) Clear(c color.RGBA) error {
	if err := m.titleStyle.Clear(m.b, 0, 0, c); err != nil {
		return fmt.Errorf("clear title: %w", err)
	}
	for i := 0; i < m.rows; i++ {
		if err := m.itemStyle.Clear(m.b, 0, m.rowY(i), c); err != nil {
			return fmt.Errorf("clear row %d: %w", i, err)
		}
	}
	return nil
}

// Selected returns the selected index, or -1 when nothing is selected.
func (m *Menu) Selected() int { return m.selected }

// SelectedText returns the label of the selected item, or "" when nothing is selected.
func (m *Menu) SelectedText() string {
	if m.selected < 0 || m.selected >= len(m.items) {
		return ""
	}
	return m.items[m.selected].label
}

// Title returns the stored, truncated title.
func (m *Menu) Title() string { return m.title }

// Len returns the number of items.
func (m *Menu) Len() int { return len(m.items) }

// Capacity returns the item bound, or 0 for an unbounded menu.
func (m *Menu) Capacity() int {
	if m.capacity < 0 {
		return 0
	}
	return m.capacity
}

// Item returns the label and state of the item at idx.
func (m *Menu) Item(idx int) (string, State, bool) {
	if idx < 0 || idx >= len(m.items) {
		return "", Normal, false
	}
	it := m.items[idx]
	return it.label, it.state, true
}

// StartRow returns the index of the first visible item.
func (m *Menu) StartRow() int { return m.start }

// VisibleRows returns how many item rows fit below the title. It is 0 until Show.
func (m *Menu) VisibleRows() int { return m.rows }

func (m *Menu) layout() {
	if m.initialized {
		return
	}
	m.initialized = true

	m.titleStyle.Init(m.b)
	m.titleHeight = m.titleStyle.Height()
	m.itemStyle.Init(m.b)
	m.itemHeight = m.itemStyle.Height()

	m.rows = 0
	if free := m.b.Height() - m.titleHeight; m.itemHeight > 0 && free > 0 {
		m.rows = free / m.itemHeight
	}
	m.start = 0
	m.logf("menu: layout title=%d item=%d rows=%d", m.titleHeight, m.itemHeight, m.rows)
}

// ensureSelection adopts the first enabled item in the window when nothing is
// selected yet, and leaves exactly the selected item tagged Selected.
func (m *Menu) ensureSelection() {
	if m.selected < 0 {
		for i := 0; i < m.rows; i++ {
			idx := m.start + i
			if idx >= len(m.items) {
				break
			}
			if m.items[idx].state != Disabled {
				m.logf("menu: adopt %d", idx)
				m.selected = idx
				break
			}
		}
	}

	for i := range m.items {
		switch {
		case i == m.selected:
			m.items[i].state = Selected
		case m.items[i].state == Selected:
			m.items[i].state = Normal
		}
	}
}

func (m *Menu) moveTo(idx int) {
	m.logf("menu: select %d -> %d (start %d)", m.selected, idx, m.start)
	if m.selected >= 0 {
		m.items[m.selected].state = Normal
	}
	m.selected = idx
	m.items[idx].state = Selected
}

func (m *Menu) redraw() error {
	m.ensureSelection()
	for i := 0; i < m.rows; i++ {
		idx := m.start + i
		if idx >= len(m.items) {
			break
		}
		if err := m.drawItem(idx); err != nil {
			return fmt.Errorf("draw item %d: %w", idx, err)
		}
	}
	return nil
}

func (m *Menu) drawItem(idx int) error {
	it := m.items[idx]
	y := m.rowY(idx - m.start)
	if err := m.itemStyle.DrawAt(m.b, 0, y, it.label, it.state); err != nil {
		return err
	}
	if idx == m.start && idx != 0 {
		if err := m.itemStyle.DrawUpArrow(m.b, 0, y, it.state); err != nil {
			return err
		}
	}
	if idx == m.start+m.rows-1 && idx != len(m.items)-1 {
		if err := m.itemStyle.DrawDownArrow(m.b, 0, y, it.state); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) rowY(slot int) int {
	return m.titleHeight + m.itemHeight*slot
}

func (m *Menu) logf(format string, args ...any) {
	if m.log == nil {
		return
	}
	m.log.WriteLineString(fmt.Sprintf(format, args...))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	return runewidth.Truncate(s, limit, "")
}
