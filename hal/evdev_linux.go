//go:build linux && !tinygo

package hal

import (
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

var evdevKeys = map[evdev.EvCode]KeyCode{
	evdev.KEY_UP:      KeyUp,
	evdev.KEY_DOWN:    KeyDown,
	evdev.KEY_LEFT:    KeyLeft,
	evdev.KEY_RIGHT:   KeyRight,
	evdev.KEY_ENTER:   KeyEnter,
	evdev.KEY_KPENTER: KeyEnter,
	evdev.KEY_ESC:     KeyEscape,
	evdev.KEY_HOME:    KeyHome,
	evdev.KEY_END:     KeyEnd,
}

type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// evdevKeyboard reads key events from a Linux input device, e.g. a GPIO
// keypad exposed through gpio-keys.
type evdevKeyboard struct {
	src     eventReader
	ch      chan KeyEvent
	closed  atomic.Bool
	dropped atomic.Uint32
}

func openEvdevKeyboard(path string) (*evdevKeyboard, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return newEvdevKeyboard(dev), nil
}

func newEvdevKeyboard(src eventReader) *evdevKeyboard {
	k := &evdevKeyboard{src: src, ch: make(chan KeyEvent, 64)}
	go k.run()
	return k
}

func (k *evdevKeyboard) Events() <-chan KeyEvent { return k.ch }

// Dropped reports how many events were discarded because the channel was full.
func (k *evdevKeyboard) Dropped() uint32 { return k.dropped.Load() }

func (k *evdevKeyboard) Close() error {
	if !k.closed.CompareAndSwap(false, true) {
		return nil
	}
	return k.src.Close()
}

func (k *evdevKeyboard) run() {
	defer close(k.ch)
	for {
		ev, err := k.src.ReadOne()
		if err != nil {
			// Closed or unplugged.
			return
		}
		kev, ok := translateEvdev(ev)
		if !ok {
			continue
		}
		select {
		case k.ch <- kev:
		default:
			k.dropped.Inc()
		}
	}
}

// translateEvdev maps an EV_KEY press or release. Autorepeat (value 2) and
// unmapped codes are ignored.
func translateEvdev(ev *evdev.InputEvent) (KeyEvent, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return KeyEvent{}, false
	}
	code, ok := evdevKeys[ev.Code]
	if !ok {
		return KeyEvent{}, false
	}
	switch ev.Value {
	case 1:
		return KeyEvent{Code: code, Press: true}, true
	case 0:
		return KeyEvent{Code: code, Press: false}, true
	default:
		return KeyEvent{}, false
	}
}
