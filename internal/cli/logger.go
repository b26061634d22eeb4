package cli

import (
	"fmt"
	"io"
	"sync"
)

type lineBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *lineBuffer) WriteLineString(s string) {
	b.mu.Lock()
	b.lines = append(b.lines, s)
	b.mu.Unlock()
}

func (b *lineBuffer) flushTo(w io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, l := range b.lines {
		fmt.Fprintln(w, l)
	}
	b.lines = nil
}
