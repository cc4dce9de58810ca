package terminal

import (
	"bytes"
	"testing"
)

func TestFlags(t *testing.T) {
	var f Flags

	if f.Stopped() {
		t.Error("fresh flags report stopped")
	}
	f.Stop()
	if !f.Stopped() {
		t.Error("Stop did not latch")
	}
	if !f.Stopped() {
		t.Error("stop must stay latched")
	}

	if f.TakeResize() {
		t.Error("fresh flags report a pending resize")
	}
	f.NotifyResize()
	if !f.TakeResize() {
		t.Error("NotifyResize was not observed")
	}
	if f.TakeResize() {
		t.Error("TakeResize must consume the notification")
	}
}

func TestNewBackends(t *testing.T) {
	var flags Flags

	for _, name := range []string{"", BackendANSI, BackendTcell} {
		term, err := New(name, Style{Levels: 12}, &flags)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		if term == nil {
			t.Errorf("New(%q) returned nil terminal", name)
		}
	}

	if _, err := New("framebuffer", Style{}, &flags); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[0m", "\x1b[?7h"} {
		if !bytes.Contains([]byte(out), []byte(seq)) {
			t.Errorf("reset output missing %q: %q", seq, out)
		}
	}
}
