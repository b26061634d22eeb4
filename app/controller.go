package app

import (
	"fmt"

	"tftmenu/hal"
	"tftmenu/menu"
)

// Controller maps key presses to menu operations and presents the display
// after each change.
type Controller struct {
	m       *menu.Menu
	log     hal.Logger
	present func() error
}

// NewController drives m. present may be nil when the display needs no flush.
func NewController(m *menu.Menu, log hal.Logger, present func() error) *Controller {
	return &Controller{m: m, log: log, present: present}
}

func (c *Controller) Menu() *menu.Menu { return c.m }

// Start draws the menu for the first time.
func (c *Controller) Start() error {
	if err := c.m.Show(); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return c.flush()
}

// Handle applies one key event. Releases are ignored. Escape (or q) clears
// the menu and returns hal.ErrStop.
func (c *Controller) Handle(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}

	code := ev.Code
	if code == hal.KeyUnknown {
		switch ev.Rune {
		case 'k':
			code = hal.KeyUp
		case 'j':
			code = hal.KeyDown
		case 'q':
			code = hal.KeyEscape
		case '\r', '\n', ' ':
			code = hal.KeyEnter
		default:
			return nil
		}
	}

	switch code {
	case hal.KeyUp:
		if err := c.m.Up(); err != nil {
			return err
		}
	case hal.KeyDown:
		if err := c.m.Down(); err != nil {
			return err
		}
	case hal.KeyHome:
		if err := c.repeat(c.m.Up); err != nil {
			return err
		}
	case hal.KeyEnd:
		if err := c.repeat(c.m.Down); err != nil {
			return err
		}
	case hal.KeyEnter:
		c.confirm()
		return nil
	case hal.KeyEscape:
		if err := c.m.Clear(menu.Black); err != nil {
			return err
		}
		if err := c.flush(); err != nil {
			return err
		}
		return hal.ErrStop
	default:
		return nil
	}
	return c.flush()
}

// repeat calls move until the selection stops changing.
func (c *Controller) repeat(move func() error) error {
	for i := 0; i < c.m.Len(); i++ {
		before, start := c.m.Selected(), c.m.StartRow()
		if err := move(); err != nil {
			return err
		}
		if c.m.Selected() == before && c.m.StartRow() == start {
			return nil
		}
	}
	return nil
}

func (c *Controller) confirm() {
	idx := c.m.Selected()
	if idx < 0 || c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf("selected: %d %s", idx, c.m.SelectedText()))
}

func (c *Controller) flush() error {
	if c.present == nil {
		return nil
	}
	return c.present()
}
