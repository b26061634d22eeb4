//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	HostConfig

	Hz    int
	Ticks uint64
	// Snapshot, when set, is a PNG path the final framebuffer is written to.
	Snapshot string
}

// RunHeadless drives the app step function from a ticker without opening a
// window. It returns nil when the app returns ErrStop or Ticks is reached.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) func() error) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h, err := newHostHAL(cfg.HostConfig)
	if err != nil {
		return err
	}
	defer h.Close()
	defer func() {
		if cfg.Snapshot == "" {
			return
		}
		if serr := writeSnapshot(h.fb, cfg.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}()

	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.Snapshot()); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
