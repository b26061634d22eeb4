//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
}

// poll turns this frame's ebiten key transitions into events.
func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	for _, wk := range windowKeys {
		if inpututil.IsKeyJustPressed(wk.key) {
			k.emit(KeyEvent{Code: wk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(wk.key) {
			k.emit(KeyEvent{Code: wk.code, Press: false})
		}
	}
}
