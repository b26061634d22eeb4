package menu

import (
	"errors"
	"image/color"
	"reflect"
	"testing"
)

func TestRowStyleInitDefaults(t *testing.T) {
	s := NewRowStyle()
	s.Init(newRecorder(320, 240, 16))

	if got := s.Viewport(); got != (Rect{X: 0, Y: 0, W: 320, H: 16}) {
		t.Fatalf("viewport=%+v", got)
	}
	if s.Height() != 16 || s.Width() != 320 {
		t.Fatalf("size=%dx%d, want 320x16", s.Width(), s.Height())
	}
}

func TestRowStyleInitMarginsAndBorder(t *testing.T) {
	s := NewRowStyle()
	s.SetMargins(2, 3, 4, 5)
	s.SetBorder(1, 1, 1, 1)
	s.Init(newRecorder(100, 100, 10))

	want := Rect{X: 4, Y: 3, W: 100 - 3 - 5 - 1 - 1, H: 10}
	if got := s.Viewport(); got != want {
		t.Fatalf("viewport=%+v, want %+v", got, want)
	}
	if got := s.Height(); got != 2+4+1+1+10 {
		t.Fatalf("height=%d, want 18", got)
	}
}

func TestRowStyleExplicitViewport(t *testing.T) {
	s := NewRowStyle()
	s.SetMargins(1, 1, 1, 1)
	s.SetTextViewport(10, Unset, 50, Unset)
	s.Init(newRecorder(200, 100, 12))

	want := Rect{X: 10, Y: 1, W: 50, H: 12}
	if got := s.Viewport(); got != want {
		t.Fatalf("viewport=%+v, want %+v", got, want)
	}
}

func TestRowStyleInitRecomputes(t *testing.T) {
	s := NewRowStyle()
	s.Init(newRecorder(100, 100, 8))
	s.Init(newRecorder(200, 100, 20))
	if s.Height() != 20 || s.Viewport().W != 200 {
		t.Fatalf("second Init not applied: h=%d vp=%+v", s.Height(), s.Viewport())
	}
}

func TestRowStyleDrawAtNoBorder(t *testing.T) {
	r := newRecorder(100, 100, 10)
	s := NewRowStyle()
	s.Init(r)

	if err := s.DrawAt(r, 0, 20, "Hello", Selected); err != nil {
		t.Fatalf("DrawAt: %v", err)
	}
	want := []string{
		"rect 0,20 100x10 white",
		"clip 0,20 100x10",
		`text 0,20 "Hello" black/white f2`,
		"unclip",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops=%q\nwant %q", r.ops, want)
	}
}

func TestRowStyleDrawAtBorder(t *testing.T) {
	r := newRecorder(100, 100, 10)
	s := NewRowStyle()
	s.SetBorder(1, 2, 1, 2)
	s.SetBorderColors(Black, color.RGBA{R: 0xFF, A: 0xFF}, Black)
	s.Init(r)

	if err := s.DrawAt(r, 0, 0, "x", Selected); err != nil {
		t.Fatalf("DrawAt: %v", err)
	}
	want := []string{
		"rect 0,0 100x12 #ff0000",
		"rect 2,1 96x10 white",
		"clip 2,1 96x10",
		`text 2,1 "x" black/white f2`,
		"unclip",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops=%q\nwant %q", r.ops, want)
	}
}

func TestRowStyleColorsPerState(t *testing.T) {
	r := newRecorder(50, 50, 5)
	s := NewRowStyle()
	red := color.RGBA{R: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	s.SetColors(
		ColorPair{Background: Black, Foreground: White},
		ColorPair{Background: blue, Foreground: White},
		ColorPair{Background: Black, Foreground: red},
	)
	s.Init(r)

	_ = s.DrawAt(r, 0, 0, "d", Disabled)
	if got := r.ops[2]; got != `text 0,0 "d" #ff0000/black f2` {
		t.Fatalf("disabled text op=%q", got)
	}
	r.reset()
	_ = s.DrawAt(r, 0, 0, "s", Selected)
	if got := r.ops[0]; got != "rect 0,0 50x5 #0000ff" {
		t.Fatalf("selected background op=%q", got)
	}
}

func TestRowStyleDrawAtRestoresClipOnError(t *testing.T) {
	r := newRecorder(100, 100, 10)
	r.failText = errors.New("boom")
	s := NewRowStyle()
	s.Init(r)

	if err := s.DrawAt(r, 0, 0, "x", Normal); err == nil {
		t.Fatal("expected error")
	}
	if r.clipped {
		t.Fatal("clip not restored after failed draw")
	}
}

func TestRowStyleDrawAtRestoresClipOnPanic(t *testing.T) {
	r := newRecorder(100, 100, 10)
	r.panicOn = "bad"
	s := NewRowStyle()
	s.Init(r)

	func() {
		defer func() { _ = recover() }()
		_ = s.DrawAt(r, 0, 0, "bad", Normal)
	}()
	if r.clipped {
		t.Fatal("clip not restored after panic")
	}
}

func TestRowStyleDrawAtStopsOnFillError(t *testing.T) {
	r := newRecorder(100, 100, 10)
	r.failFill = 1
	s := NewRowStyle()
	s.Init(r)

	if err := s.DrawAt(r, 0, 0, "x", Normal); err == nil {
		t.Fatal("expected error")
	}
	if r.count("clip") != 0 || r.count("text") != 0 {
		t.Fatalf("unexpected ops after failure: %q", r.ops)
	}
}

func TestRowStyleArrows(t *testing.T) {
	r := newRecorder(100, 100, 16)
	s := NewRowStyle()
	s.Init(r)

	// size 12, top 2, right 99, left 88, center 93, bottom 13
	if err := s.DrawUpArrow(r, 0, 40, Normal); err != nil {
		t.Fatalf("DrawUpArrow: %v", err)
	}
	if err := s.DrawDownArrow(r, 0, 40, Normal); err != nil {
		t.Fatalf("DrawDownArrow: %v", err)
	}
	want := []string{
		"rect 86,42 14x12 black",
		"tri 88,53 99,53 93,42 white",
		"rect 86,42 14x12 black",
		"tri 88,42 99,42 93,53 white",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops=%q\nwant %q", r.ops, want)
	}
}

func TestRowStyleArrowTooSmall(t *testing.T) {
	r := newRecorder(100, 100, 1)
	s := NewRowStyle()
	s.Init(r)
	if err := s.DrawUpArrow(r, 0, 0, Normal); err != nil {
		t.Fatalf("DrawUpArrow: %v", err)
	}
	if len(r.ops) != 0 {
		t.Fatalf("expected no ops, got %q", r.ops)
	}
}

type arrowRecorder struct {
	*recorder
	arrows []string
}

func (a *arrowRecorder) DrawArrow(x, y int, up bool, fg, bg color.RGBA) error {
	dir := "down"
	if up {
		dir = "up"
	}
	a.arrows = append(a.arrows, dir)
	return nil
}

func TestRowStyleArrowDrawer(t *testing.T) {
	a := &arrowRecorder{recorder: newRecorder(20, 10, 1)}
	s := NewRowStyle()
	s.Init(a)
	_ = s.DrawUpArrow(a, 0, 0, Normal)
	_ = s.DrawDownArrow(a, 0, 1, Normal)
	if !reflect.DeepEqual(a.arrows, []string{"up", "down"}) {
		t.Fatalf("arrows=%v", a.arrows)
	}
	if len(a.ops) != 0 {
		t.Fatalf("unexpected raw ops %q", a.ops)
	}
}

func TestRowStyleClear(t *testing.T) {
	r := newRecorder(64, 64, 8)
	s := NewRowStyle()
	s.SetMargins(1, 0, 1, 0)
	s.Init(r)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	if err := s.Clear(r, 0, 30, red); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if r.ops[0] != "rect 0,30 64x10 #ff0000" {
		t.Fatalf("op=%q", r.ops[0])
	}
}

func TestRowStyleReset(t *testing.T) {
	s := NewRowStyle()
	s.SetFont(7)
	s.SetMargins(1, 1, 1, 1)
	s.SetTextViewport(1, 2, 3, 4)
	s.Reset()

	if s.Font() != DefaultFont || s.Margins() != (Insets{}) {
		t.Fatalf("reset did not restore defaults: font=%d margins=%+v", s.Font(), s.Margins())
	}
	s.Init(newRecorder(10, 10, 3))
	if s.Viewport() != (Rect{W: 10, H: 3}) {
		t.Fatalf("viewport=%+v", s.Viewport())
	}
	if s.Colors() != defaultColors() {
		t.Fatal("colors not reset")
	}
}
