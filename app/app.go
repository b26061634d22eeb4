// Package app wires a menu definition to a display and a key event stream.
package app

import (
	"errors"
	"fmt"

	"tftmenu/display/fbdisplay"
	"tftmenu/fonts"
	"tftmenu/hal"
	"tftmenu/menu"
	"tftmenu/menuconf"
)

var errNoFramebuffer = errors.New("app: no framebuffer")

type Config struct {
	// Menu is the definition to show. Nil selects menuconf.Default.
	Menu *menuconf.Definition
	// Fonts resolves font IDs on pixel displays. Nil selects fonts.Default.
	Fonts *fonts.Registry
	// Trace routes the menu's selection trace to the HAL logger.
	Trace bool
}

func (c Config) definition() *menuconf.Definition {
	if c.Menu == nil {
		return menuconf.Default()
	}
	return c.Menu
}

func (c Config) build(b menu.Backend, log hal.Logger) (*menu.Menu, error) {
	var opts []menu.Option
	if c.Trace && log != nil {
		opts = append(opts, menu.WithLogger(log))
	}
	m, err := c.definition().Build(b, opts...)
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}
	return m, nil
}

// New returns an app constructor for hal.RunWindow and hal.RunHeadless.
//
// The menu is built and shown on the first step. Every later step drains the
// pending key events without blocking.
func New(cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		var (
			ctl    *Controller
			events <-chan hal.KeyEvent
		)
		return func() error {
			if ctl == nil {
				c, err := start(h, cfg)
				if err != nil {
					return err
				}
				ctl = c
				if in := h.Input(); in != nil {
					if kbd := in.Keyboard(); kbd != nil {
						events = kbd.Events()
					}
				}
			}

			for events != nil {
				select {
				case ev, ok := <-events:
					if !ok {
						events = nil
						continue
					}
					if err := ctl.Handle(ev); err != nil {
						return err
					}
				default:
					return nil
				}
			}
			return nil
		}
	}
}

func start(h hal.HAL, cfg Config) (*Controller, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errNoFramebuffer
	}
	d, err := fbdisplay.New(disp.Framebuffer(), cfg.Fonts)
	if err != nil {
		return nil, err
	}

	m, err := cfg.build(d, h.Logger())
	if err != nil {
		return nil, err
	}
	ctl := NewController(m, h.Logger(), d.Display)
	if err := ctl.Start(); err != nil {
		return nil, err
	}
	return ctl, nil
}
