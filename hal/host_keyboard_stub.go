//go:build !tinygo && !cgo

package hal

// Without cgo there is no window to read keys from; use an evdev device instead.
func (k *hostKeyboard) poll() {}
