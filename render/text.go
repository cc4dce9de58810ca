package render

import (
	"time"
)

// TextSource supplies the string rendered each frame. Implementations may
// return a different string on every call.
type TextSource interface {
	Text() string
}

// StaticText renders the same string every frame
type StaticText string

func (s StaticText) Text() string {
	return string(s)
}

// Clock renders the current time in a Go reference layout, re-formatted
// every frame, so the rendered string may change length between frames
type Clock struct {
	Layout string
	Now    func() time.Time // nil means time.Now
}

func (c Clock) Text() string {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(c.Layout)
}
