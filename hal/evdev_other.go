//go:build !linux && !tinygo

package hal

import "errors"

type evdevKeyboard struct{}

func openEvdevKeyboard(path string) (*evdevKeyboard, error) {
	return nil, errors.New("evdev input is only available on linux")
}

func (k *evdevKeyboard) Events() <-chan KeyEvent { return nil }
func (k *evdevKeyboard) Close() error            { return nil }
