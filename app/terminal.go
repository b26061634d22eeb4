package app

import (
	"context"
	"errors"

	"tftmenu/display/celldisplay"
	"tftmenu/hal"

	"github.com/gdamore/tcell/v2"
)

var terminalKeys = map[tcell.Key]hal.KeyCode{
	tcell.KeyUp:     hal.KeyUp,
	tcell.KeyDown:   hal.KeyDown,
	tcell.KeyLeft:   hal.KeyLeft,
	tcell.KeyRight:  hal.KeyRight,
	tcell.KeyEnter:  hal.KeyEnter,
	tcell.KeyEscape: hal.KeyEscape,
	tcell.KeyCtrlC:  hal.KeyEscape,
	tcell.KeyHome:   hal.KeyHome,
	tcell.KeyEnd:    hal.KeyEnd,
}

// RunTerminal shows the menu on an initialized tcell screen and handles its
// key events until Escape or ctx is done. The caller owns the screen.
func RunTerminal(ctx context.Context, screen tcell.Screen, cfg Config, log hal.Logger) error {
	d := celldisplay.New(screen)
	m, err := cfg.build(d, log)
	if err != nil {
		return err
	}
	ctl := NewController(m, log, func() error {
		d.Show()
		return nil
	})
	if err := ctl.Start(); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if err := ctl.Handle(keyEvent(ev)); err != nil {
					if errors.Is(err, hal.ErrStop) {
						return nil
					}
					return err
				}
			}
		}
	}
}

func keyEvent(ev *tcell.EventKey) hal.KeyEvent {
	if ev.Key() == tcell.KeyRune {
		return hal.KeyEvent{Press: true, Rune: ev.Rune()}
	}
	if code, ok := terminalKeys[ev.Key()]; ok {
		return hal.KeyEvent{Code: code, Press: true}
	}
	return hal.KeyEvent{}
}
