package terminal

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Terminal provides the output side of the render pipeline
type Terminal interface {
	// Init prepares the terminal: hides the cursor, clears the screen,
	// starts resize notification
	Init() error

	// Fini restores terminal state. Safe to call after a failed Init.
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Present writes one finished frame. chars and shades are row-major
	// width*height buffers; shades holds the palette level per cell and
	// drives color output when enabled.
	Present(chars []byte, shades []uint8, width, height int)

	// Clear erases the screen outside of frame presentation
	Clear()
}

// Flags is the polled notification surface shared between the signal and
// input plumbing and the frame loop. Safe for concurrent use; the loop
// reads, everything else writes.
type Flags struct {
	stop    atomic.Bool
	resized atomic.Bool
}

// Stop raises the stop request
func (f *Flags) Stop() {
	f.stop.Store(true)
}

// Stopped reports whether a stop was requested
func (f *Flags) Stopped() bool {
	return f.stop.Load()
}

// NotifyResize marks a pending terminal resize
func (f *Flags) NotifyResize() {
	f.resized.Store(true)
}

// TakeResize consumes a pending resize notification
func (f *Flags) TakeResize() bool {
	return f.resized.Swap(false)
}

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// New builds a Terminal for the named backend. Backends raise resize and
// stop conditions on flags.
func New(backend string, style Style, flags *Flags) (Terminal, error) {
	switch backend {
	case "", BackendANSI:
		return newANSITerm(os.Stdout, style, flags), nil
	case BackendTcell:
		return newTcellTerm(style, flags), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", backend)
	}
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	resetTerminalMode()
}
