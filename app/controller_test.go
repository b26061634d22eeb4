package app

import (
	"errors"
	"testing"

	"tftmenu/hal"
	"tftmenu/menu"
	"tftmenu/menuconf"
)

func newTestController(t *testing.T, doc string) (*Controller, *lineLog) {
	t.Helper()
	def, err := menuconf.Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fb := &memFB{w: 64, h: 64, buf: make([]byte, 64*64*2)}
	m, err := Config{Menu: def}.build(mustDisplay(t, fb), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	log := &lineLog{}
	ctl := NewController(m, log, nil)
	if err := ctl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return ctl, log
}

const fiveItems = `
[[items]]
label = "a"
[[items]]
label = "b"
[[items]]
label = "c"
state = "disabled"
[[items]]
label = "d"
[[items]]
label = "e"
`

func TestControllerHomeEnd(t *testing.T) {
	ctl, _ := newTestController(t, fiveItems)

	if err := ctl.Handle(press(hal.KeyEnd)); err != nil {
		t.Fatalf("End: %v", err)
	}
	if got := ctl.Menu().Selected(); got != 4 {
		t.Fatalf("after End selected=%d, want 4", got)
	}
	if err := ctl.Handle(press(hal.KeyHome)); err != nil {
		t.Fatalf("Home: %v", err)
	}
	if got := ctl.Menu().Selected(); got != 0 {
		t.Fatalf("after Home selected=%d, want 0", got)
	}
}

func TestControllerRunes(t *testing.T) {
	ctl, log := newTestController(t, fiveItems)

	for _, r := range "jjx" {
		if err := ctl.Handle(hal.KeyEvent{Press: true, Rune: r}); err != nil {
			t.Fatalf("rune %q: %v", r, err)
		}
	}
	if got := ctl.Menu().Selected(); got != 3 {
		t.Fatalf("selected=%d, want 3", got)
	}
	_ = ctl.Handle(hal.KeyEvent{Press: true, Rune: 'k'})
	_ = ctl.Handle(hal.KeyEvent{Press: true, Rune: ' '})
	if len(log.lines) != 1 || log.lines[0] != "selected: 1 b" {
		t.Fatalf("log=%q", log.lines)
	}
	if err := ctl.Handle(hal.KeyEvent{Press: true, Rune: 'q'}); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("q: err=%v", err)
	}
}

func TestControllerIgnoresReleases(t *testing.T) {
	ctl, _ := newTestController(t, fiveItems)
	_ = ctl.Handle(hal.KeyEvent{Code: hal.KeyDown})
	if got := ctl.Menu().Selected(); got != 0 {
		t.Fatalf("release moved selection to %d", got)
	}
}

func TestControllerEnterWithoutSelection(t *testing.T) {
	ctl, log := newTestController(t, "[[items]]\nlabel = \"x\"\nstate = \"disabled\"\n")
	if ctl.Menu().Selected() != -1 {
		t.Fatal("disabled-only menu must have no selection")
	}
	_ = ctl.Handle(press(hal.KeyEnter))
	if len(log.lines) != 0 {
		t.Fatalf("unexpected log %q", log.lines)
	}
	_, st, _ := ctl.Menu().Item(0)
	if st != menu.Disabled {
		t.Fatalf("state=%v", st)
	}
}
