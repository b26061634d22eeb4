//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const (
	DefaultWidth  = 240
	DefaultHeight = 320
	DefaultScale  = 2
)

// HostConfig describes the emulated display and input of a host run.
type HostConfig struct {
	Width  int
	Height int
	// Scale is the window magnification; ignored in headless mode.
	Scale int
	// InputDevice is an optional evdev path (e.g. /dev/input/event0) read
	// instead of the window keyboard.
	InputDevice string
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ext    *evdevKeyboard
}

func newHostHAL(cfg HostConfig) (*hostHAL, error) {
	cfg = cfg.withDefaults()
	h := &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
	}
	if cfg.InputDevice != "" {
		ext, err := openEvdevKeyboard(cfg.InputDevice)
		if err != nil {
			return nil, fmt.Errorf("open input %s: %w", cfg.InputDevice, err)
		}
		h.ext = ext
	}
	return h, nil
}

// New returns a host HAL implementation.
func New(cfg HostConfig) (HAL, error) {
	h, err := newHostHAL(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

func (h *hostHAL) Input() Input {
	if h.ext != nil {
		return hostInput{kbd: h.ext}
	}
	return hostInput{kbd: h.kbd}
}

func (h *hostHAL) Close() error {
	if h.ext != nil {
		return h.ext.Close()
	}
	return nil
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
