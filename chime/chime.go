// Package chime plays a short tone at the top of every hour. Used only in
// clock mode; the render loop never touches it.
package chime

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880.0
	toneLen    = 300 * time.Millisecond
)

// Chimer watches the wall clock and rings on each hour boundary
type Chimer struct {
	stopCh chan struct{}
	doneCh chan struct{}
}

// New initializes the speaker. Failure is non-fatal to the caller, the
// display runs fine without sound.
func New() (*Chimer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Chimer{
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}, nil
}

// Start begins waiting for hour boundaries
func (c *Chimer) Start() {
	go func() {
		defer close(c.doneCh)
		for {
			next := time.Now().Truncate(time.Hour).Add(time.Hour)
			timer := time.NewTimer(time.Until(next))
			select {
			case <-c.stopCh:
				timer.Stop()
				return
			case <-timer.C:
				c.ring()
			}
		}
	}()
}

// Stop ends the watcher and waits for it to exit
func (c *Chimer) Stop() {
	close(c.stopCh)
	<-c.doneCh
}

func (c *Chimer) ring() {
	tone, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLen), tone))
}
