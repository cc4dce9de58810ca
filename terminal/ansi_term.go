package terminal

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ansiTerm writes frames as rows of direct ANSI output
type ansiTerm struct {
	out   *os.File
	w     *bufio.Writer
	style Style
	flags *Flags
	ramp  []RGB

	watchStop chan struct{}
	watchDone chan struct{}
}

func newANSITerm(out *os.File, style Style, flags *Flags) *ansiTerm {
	return &ansiTerm{
		out:   out,
		w:     bufio.NewWriterSize(out, 131072), // 128KB, a full frame per flush
		style: style,
		flags: flags,
		ramp:  style.Ramp(),
	}
}

func (t *ansiTerm) Init() error {
	if !term.IsTerminal(int(t.out.Fd())) {
		return fmt.Errorf("output is not a terminal")
	}
	t.w.Write(csiCursorHide)
	t.w.Write(csiAutoWrapOff)
	t.w.Write(csiClear)
	t.w.Flush()

	t.watchStop = make(chan struct{})
	t.watchDone = make(chan struct{})
	watchWinch(t.watchStop, t.watchDone, t.flags.NotifyResize)
	return nil
}

func (t *ansiTerm) Fini() {
	if t.watchStop != nil {
		close(t.watchStop)
		<-t.watchDone
		t.watchStop = nil
	}
	t.w.Write(csiSGR0)
	t.w.Write(csiAutoWrapOn)
	t.w.Write(csiCursorShow)
	t.w.WriteByte('\n')
	t.w.Flush()
}

func (t *ansiTerm) Size() (int, int) {
	return getTerminalSize(int(t.out.Fd()))
}

func (t *ansiTerm) Clear() {
	t.w.Write(csiClear)
	t.w.Flush()
}

// Present rewrites the whole screen from the home position, row by row.
// In color mode a foreground sequence is emitted only when the shade
// level changes, and never for blank cells.
func (t *ansiTerm) Present(chars []byte, shades []uint8, width, height int) {
	if len(chars) < width*height {
		return
	}
	w := t.w
	w.Write(csiHome)

	if !t.style.Color {
		for y := 0; y < height; y++ {
			w.Write(chars[y*width : (y+1)*width])
			w.WriteByte('\n')
		}
		w.Flush()
		return
	}

	last := -1
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := chars[row+x]
			if c == ' ' {
				w.WriteByte(c)
				continue
			}
			if level := int(shades[row+x]); level != last && level < len(t.ramp) {
				writeFg(w, t.ramp[level], t.style.Mode)
				last = level
			}
			w.WriteByte(c)
		}
		w.WriteByte('\n')
	}
	w.Write(csiSGR0)
	w.Flush()
}
