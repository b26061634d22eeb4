//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Snapshot converts the current contents to an RGBA image.
func (f *hostFramebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.snapshotInto(img)
	return img
}

func (f *hostFramebuffer) snapshotInto(img *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	dst := img.Pix
	for y := 0; y < f.height; y++ {
		row := y * f.stride
		for x := 0; x < f.width; x++ {
			off := row + x*2
			j := img.PixOffset(x, y)
			if off+1 >= len(f.buf) || j+3 >= len(dst) {
				return
			}
			r, g, b := rgb888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}
}
