package render

import (
	"testing"
	"time"
)

func TestStaticText(t *testing.T) {
	if got := StaticText("HELLO").Text(); got != "HELLO" {
		t.Errorf("Text() = %q, want %q", got, "HELLO")
	}
	if got := StaticText("").Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestClockFixedTime(t *testing.T) {
	at := time.Date(2026, time.August, 30, 9, 41, 7, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"Hours and minutes", "15:04", "09:41"},
		{"With seconds", "15:04:05", "09:41:07"},
		{"Twelve hour", "3:04PM", "9:41AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Clock{Layout: tt.layout, Now: func() time.Time { return at }}
			if got := c.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClockDefaultsToWallClock(t *testing.T) {
	c := Clock{Layout: "15:04"}
	got := c.Text()
	if len(got) != 5 || got[2] != ':' {
		t.Errorf("Text() = %q, want HH:MM shape", got)
	}
}
