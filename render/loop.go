package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/holoterm/terminal"
)

// Observer reports the two asynchronous conditions the loop polls at its
// checkpoints: a stop request and a pending terminal resize. Both are set
// out of band and consumed here, never awaited.
type Observer interface {
	Stopped() bool
	TakeResize() bool
}

// Loop paces the render pipeline: resize, clear, sample, present, sleep.
// Single-threaded; once a frame starts it runs to completion before the
// stop flag is checked again.
type Loop struct {
	term  terminal.Terminal
	obs   Observer
	src   TextSource
	rend  *Renderer
	frame *Frame
	fps   int

	a, b  float64
	sized bool
}

// NewLoop wires the loop's collaborators. fps <= 0 selects TargetFPS.
func NewLoop(term terminal.Terminal, obs Observer, src TextSource, rend *Renderer, frame *Frame, fps int) *Loop {
	if fps <= 0 {
		fps = TargetFPS
	}
	return &Loop{
		term:  term,
		obs:   obs,
		src:   src,
		rend:  rend,
		frame: frame,
		fps:   fps,
	}
}

// Run renders frames until the observer reports a stop. The only error is
// a failed buffer (re)allocation, which terminates the loop cleanly.
func (l *Loop) Run() error {
	period := time.Second / time.Duration(l.fps)

	for !l.obs.Stopped() {
		start := time.Now()
		text := l.src.Text()

		if l.obs.TakeResize() || !l.sized {
			w, h := l.term.Size()
			h-- // keep the last row free so some terminals don't scroll
			if err := l.frame.Resize(w, h); err != nil {
				return fmt.Errorf("frame resize: %w", err)
			}
			if z := l.rend.opts.Zoom; z > 0 {
				l.rend.SetZoom(z)
			} else {
				l.rend.SetZoom(l.rend.AutoZoom(len(text), w, h))
			}
			l.term.Clear()
			l.sized = true
		}

		l.frame.Clear()
		l.rend.SetAngles(l.a, l.b)
		l.rend.RenderText(text)
		l.term.Present(l.frame.Chars(), l.frame.Shades(), l.frame.Width(), l.frame.Height())

		l.a += l.rend.opts.SpeedA
		l.b += l.rend.opts.SpeedB

		pace(start, period)
	}
	return nil
}

// pace sleeps whatever remains of the frame period measured from start
func pace(start time.Time, period time.Duration) {
	if d := period - time.Since(start); d > 0 {
		time.Sleep(d)
	}
}
