// Package menuconf loads menu definitions from TOML.
//
// A definition carries the title, the item list and optional style overrides:
//
//	title = "Main"
//	capacity = 15
//
//	[item_style]
//	font = 2
//	margins = [1, 4, 1, 4]
//
//	[item_style.colors.selected]
//	background = "#ffffff"
//	foreground = "black"
//
//	[[items]]
//	label = "Settings"
//	state = "disabled"
package menuconf

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"tftmenu/menu"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML string

// Definition is a decoded menu file. Nil fields keep the menu defaults.
type Definition struct {
	Title      string `toml:"title"`
	Capacity   *int   `toml:"capacity"`
	TitleLimit *int   `toml:"title_limit"`
	LabelLimit *int   `toml:"label_limit"`

	TitleStyle *Style `toml:"title_style"`
	ItemStyle  *Style `toml:"item_style"`

	Items []Item `toml:"items"`
}

type Item struct {
	Label string `toml:"label"`
	State State  `toml:"state"`
}

// Style overrides a menu.RowStyle. Four-element arrays are ordered
// top, left, bottom, right (margins, border) or x, y, w, h (viewport);
// -1 in the viewport leaves a field computed.
type Style struct {
	Font         *int         `toml:"font"`
	Margins      []int        `toml:"margins"`
	Border       []int        `toml:"border"`
	Viewport     []int        `toml:"viewport"`
	Colors       *Colors      `toml:"colors"`
	BorderColors *BorderColor `toml:"border_colors"`
}

type Colors struct {
	Normal   *Pair `toml:"normal"`
	Selected *Pair `toml:"selected"`
	Disabled *Pair `toml:"disabled"`
}

type Pair struct {
	Background *Color `toml:"background"`
	Foreground *Color `toml:"foreground"`
}

type BorderColor struct {
	Normal   *Color `toml:"normal"`
	Selected *Color `toml:"selected"`
	Disabled *Color `toml:"disabled"`
}

// Parse decodes and validates a definition. Keys that do not map to a field
// are reported as errors.
func Parse(data string) (*Definition, error) {
	var def Definition
	md, err := toml.Decode(data, &def)
	if err != nil {
		return nil, fmt.Errorf("menuconf: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("menuconf: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("menuconf: %w", err)
	}
	return &def, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menuconf: %w", err)
	}
	def, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Default returns the built-in demo menu.
func Default() *Definition {
	def, err := Parse(defaultTOML)
	if err != nil {
		panic(err)
	}
	return def
}

func (d *Definition) validate() error {
	for name, s := range map[string]*Style{"title_style": d.TitleStyle, "item_style": d.ItemStyle} {
		if s == nil {
			continue
		}
		if err := s.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for i, it := range d.Items {
		if it.Label == "" {
			return fmt.Errorf("items[%d]: empty label", i)
		}
	}
	return nil
}

func (s *Style) validate() error {
	if s.Font != nil && (*s.Font < 0 || *s.Font > 255) {
		return fmt.Errorf("font %d out of range", *s.Font)
	}
	for name, v := range map[string][]int{"margins": s.Margins, "border": s.Border, "viewport": s.Viewport} {
		if v != nil && len(v) != 4 {
			return fmt.Errorf("%s: want 4 values, got %d", name, len(v))
		}
	}
	for i, v := range s.Margins {
		if v < 0 {
			return fmt.Errorf("margins[%d] negative", i)
		}
	}
	for i, v := range s.Border {
		if v < 0 {
			return fmt.Errorf("border[%d] negative", i)
		}
	}
	for i, v := range s.Viewport {
		if v < menu.Unset {
			return fmt.Errorf("viewport[%d] below %d", i, menu.Unset)
		}
	}
	return nil
}

// Options returns the construction options the definition sets.
func (d *Definition) Options() []menu.Option {
	var opts []menu.Option
	if d.Capacity != nil {
		opts = append(opts, menu.WithCapacity(*d.Capacity))
	}
	if d.TitleLimit != nil {
		opts = append(opts, menu.WithTitleLimit(*d.TitleLimit))
	}
	if d.LabelLimit != nil {
		opts = append(opts, menu.WithLabelLimit(*d.LabelLimit))
	}
	return opts
}

// Apply configures both styles, sets the title and adds every item to m.
func (d *Definition) Apply(m *menu.Menu) error {
	if d.TitleStyle != nil {
		d.TitleStyle.apply(m.TitleStyle())
	}
	if d.ItemStyle != nil {
		d.ItemStyle.apply(m.ItemStyle())
	}
	m.SetTitle(d.Title)
	for i, it := range d.Items {
		if _, err := m.AddItem(it.Label, menu.State(it.State)); err != nil {
			if errors.Is(err, menu.ErrFull) {
				return fmt.Errorf("item %d %q: %w", i, it.Label, err)
			}
			return err
		}
	}
	return nil
}

// Build creates a menu on b from the definition. opts are applied after the
// definition's own options.
func (d *Definition) Build(b menu.Backend, opts ...menu.Option) (*menu.Menu, error) {
	m := menu.New(b, append(d.Options(), opts...)...)
	if err := d.Apply(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Style) apply(rs *menu.RowStyle) {
	if s.Font != nil {
		rs.SetFont(menu.FontID(*s.Font))
	}
	if s.Margins != nil {
		rs.SetMargins(s.Margins[0], s.Margins[1], s.Margins[2], s.Margins[3])
	}
	if s.Border != nil {
		rs.SetBorder(s.Border[0], s.Border[1], s.Border[2], s.Border[3])
	}
	if s.Viewport != nil {
		rs.SetTextViewport(s.Viewport[0], s.Viewport[1], s.Viewport[2], s.Viewport[3])
	}
	if s.Colors != nil {
		cur := rs.Colors()
		rs.SetColors(
			s.Colors.Normal.merge(cur.Normal),
			s.Colors.Selected.merge(cur.Selected),
			s.Colors.Disabled.merge(cur.Disabled),
		)
	}
	if s.BorderColors != nil {
		cur := rs.BorderColors()
		rs.SetBorderColors(
			s.BorderColors.Normal.or(cur.Normal),
			s.BorderColors.Selected.or(cur.Selected),
			s.BorderColors.Disabled.or(cur.Disabled),
		)
	}
}

func (p *Pair) merge(cur menu.ColorPair) menu.ColorPair {
	if p == nil {
		return cur
	}
	return menu.ColorPair{
		Background: p.Background.or(cur.Background),
		Foreground: p.Foreground.or(cur.Foreground),
	}
}
