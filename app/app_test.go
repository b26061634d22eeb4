package app

import (
	"errors"
	"strings"
	"testing"

	"tftmenu/hal"
	"tftmenu/menuconf"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}
func (f *memFB) Present() error          { f.presents++; return nil }

func (f *memFB) blank() bool {
	for _, b := range f.buf {
		if b != 0 {
			return false
		}
	}
	return true
}

type chanKeyboard chan hal.KeyEvent

func (k chanKeyboard) Events() <-chan hal.KeyEvent { return k }

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }

type fakeHAL struct {
	fb  *memFB
	kbd chanKeyboard
	log *lineLog
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:  &memFB{w: 240, h: 320, buf: make([]byte, 240*320*2)},
		kbd: make(chanKeyboard, 16),
		log: &lineLog{},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }

func press(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code, Press: true} }

func TestStepShowsMenuOnFirstStep(t *testing.T) {
	h := newFakeHAL()
	step := New(Config{})(h)

	if !h.fb.blank() {
		t.Fatal("menu drawn before first step")
	}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.blank() || h.fb.presents != 1 {
		t.Fatalf("blank=%v presents=%d", h.fb.blank(), h.fb.presents)
	}
}

func TestStepHandlesKeys(t *testing.T) {
	h := newFakeHAL()
	step := New(Config{})(h)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	h.kbd <- press(hal.KeyDown)
	h.kbd <- hal.KeyEvent{Code: hal.KeyDown}
	h.kbd <- press(hal.KeyDown)
	h.kbd <- press(hal.KeyEnter)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	// The default menu disables item 2, so two presses land on item 3.
	want := "selected: 3 Display"
	if len(h.log.lines) != 1 || h.log.lines[0] != want {
		t.Fatalf("log=%q, want %q", h.log.lines, want)
	}
	if h.fb.presents != 3 {
		t.Fatalf("presents=%d, want 3", h.fb.presents)
	}
}

func TestStepEscapeStops(t *testing.T) {
	h := newFakeHAL()
	step := New(Config{})(h)
	_ = step()

	h.kbd <- press(hal.KeyEscape)
	if err := step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("err=%v, want ErrStop", err)
	}
	if !h.fb.blank() {
		t.Fatal("menu not cleared on escape")
	}
}

func TestStepTrace(t *testing.T) {
	h := newFakeHAL()
	step := New(Config{Trace: true})(h)
	_ = step()

	found := false
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, "menu: adopt 0") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no adopt trace in %q", h.log.lines)
	}
}

func TestStepCustomMenu(t *testing.T) {
	def, err := menuconf.Parse("title = \"T\"\n[[items]]\nlabel = \"only\"\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	h := newFakeHAL()
	step := New(Config{Menu: def})(h)
	_ = step()

	h.kbd <- press(hal.KeyDown)
	h.kbd <- press(hal.KeyEnter)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(h.log.lines) != 1 || h.log.lines[0] != "selected: 0 only" {
		t.Fatalf("log=%q", h.log.lines)
	}
}

func TestStepClosedKeyboard(t *testing.T) {
	h := newFakeHAL()
	step := New(Config{})(h)
	close(h.kbd)
	for i := 0; i < 2; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestStepNoFramebuffer(t *testing.T) {
	step := New(Config{})(noDisplayHAL{})
	if err := step(); !errors.Is(err, errNoFramebuffer) {
		t.Fatalf("err=%v", err)
	}
}

type noDisplayHAL struct{}

func (noDisplayHAL) Logger() hal.Logger   { return nil }
func (noDisplayHAL) Display() hal.Display { return nil }
func (noDisplayHAL) Input() hal.Input     { return nil }
