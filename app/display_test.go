package app

import (
	"testing"

	"tftmenu/display/fbdisplay"
)

func mustDisplay(t *testing.T, fb *memFB) *fbdisplay.Display {
	t.Helper()
	d, err := fbdisplay.New(fb, nil)
	if err != nil {
		t.Fatalf("fbdisplay.New: %v", err)
	}
	return d
}
