package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcellTerm presents frames through a tcell.Screen. Unlike the ansi
// backend it owns an input loop, so quitting with q / Esc / Ctrl-C works
// without any signal delivery.
type tcellTerm struct {
	screen tcell.Screen
	style  Style
	flags  *Flags
	styles []tcell.Style // one per shade level when color is enabled
	plain  tcell.Style
}

func newTcellTerm(style Style, flags *Flags) *tcellTerm {
	t := &tcellTerm{
		style: style,
		flags: flags,
		plain: tcell.StyleDefault,
	}
	if style.Color {
		for _, c := range style.Ramp() {
			fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			t.styles = append(t.styles, tcell.StyleDefault.Foreground(fg))
		}
	}
	return t
}

func (t *tcellTerm) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.HideCursor()
	screen.Clear()
	t.screen = screen

	go t.eventLoop()
	return nil
}

// eventLoop translates tcell events into polled flags.
// PollEvent returns nil once the screen is finalized.
func (t *tcellTerm) eventLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.flags.NotifyResize()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyEscape,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				t.flags.Stop()
			}
		}
	}
}

func (t *tcellTerm) Fini() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) Clear() {
	t.screen.Clear()
	t.screen.Show()
}

func (t *tcellTerm) Present(chars []byte, shades []uint8, width, height int) {
	if len(chars) < width*height {
		return
	}
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			st := t.plain
			if t.styles != nil {
				if level := int(shades[row+x]); level < len(t.styles) {
					st = t.styles[level]
				}
			}
			t.screen.SetContent(x, y, rune(chars[row+x]), nil, st)
		}
	}
	t.screen.Show()
}
