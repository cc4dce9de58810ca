package terminal

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{5, "5"},
		{10, "10"},
		{42, "42"},
		{100, "100"},
		{255, "255"},
		{999, "999"},
		{1000, "1000"},
		{12345, "12345"},
		{-7, "0"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		if got := buf.String(); got != tt.want {
			t.Errorf("writeInt(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWriteFg(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		mode ColorMode
		want string
	}{
		{"256 palette", RGB{95, 135, 175}, ColorMode256, "\x1b[38;5;67m"},
		{"Truecolor", RGB{180, 255, 0}, ColorModeTrueColor, "\x1b[38;2;180;255;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			writeFg(w, tt.c, tt.mode)
			w.Flush()
			if got := buf.String(); got != tt.want {
				t.Errorf("writeFg = %q, want %q", got, tt.want)
			}
		})
	}
}

// present runs one Present through a pipe and returns everything written
func present(t *testing.T, style Style, chars []byte, shades []uint8, w, h int) string {
	t.Helper()
	r, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	term := newANSITerm(pw, style, &Flags{})
	term.Present(chars, shades, w, h)
	pw.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestPresentMonochrome(t *testing.T) {
	out := present(t, Style{},
		[]byte("ab"+"cd"), []uint8{0, 0, 0, 0}, 2, 2)

	if want := "\x1b[Hab\ncd\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestPresentColor(t *testing.T) {
	style := Style{
		Color:  true,
		Levels: 12,
		Dark:   RGB{0, 0, 0},
		Bright: RGB{255, 255, 255},
	}
	// Two adjacent cells at the same level share one color sequence,
	// blank cells get none
	out := present(t, style,
		[]byte(" xxy"), []uint8{0, 2, 2, 5}, 4, 1)

	if got := strings.Count(out, "\x1b[38;5;"); got != 2 {
		t.Errorf("emitted %d color sequences, want 2:\n%q", got, out)
	}
	if !strings.HasPrefix(out, "\x1b[H ") {
		t.Errorf("output does not start at home with a blank cell: %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("output does not reset attributes: %q", out)
	}
}

func TestPresentShortBufferIgnored(t *testing.T) {
	out := present(t, Style{}, []byte("ab"), []uint8{0, 0}, 4, 4)
	if out != "" {
		t.Errorf("short buffer produced output %q", out)
	}
}
