package glint

import (
	"bytes"
	"strings"
	"testing"
)

func TestScreenFlush(t *testing.T) {
	t.Run("WritesOnlyChangedCells", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatalf("NewScreen: %v", err)
		}

		s.Buffer().WriteString(0, 0, "hi", DefaultStyle())
		s.Flush()
		if out.Len() == 0 {
			t.Fatalf("first flush wrote nothing")
		}
		if !strings.Contains(out.String(), "hi") {
			t.Errorf("flushed output missing content: %q", out.String())
		}

		out.Reset()
		s.Flush()
		if out.Len() != 0 {
			t.Errorf("flush without changes wrote %d bytes", out.Len())
		}
	})

	t.Run("StyleEscapesEmitted", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatalf("NewScreen: %v", err)
		}
		s.Buffer().WriteString(0, 0, "x", DefaultStyle().Bold().Foreground(Red))
		s.Flush()
		got := out.String()
		if !strings.Contains(got, ";1") {
			t.Errorf("bold escape missing from %q", got)
		}
		if !strings.Contains(got, ";31") {
			t.Errorf("red foreground escape missing from %q", got)
		}
		if !strings.Contains(got, "\x1b[0m") {
			t.Errorf("style reset missing from %q", got)
		}
	})

	t.Run("CursorPositioning", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatalf("NewScreen: %v", err)
		}
		s.Buffer().WriteString(2, 1, "a", DefaultStyle())
		s.Flush()
		// row 2, column 3 in 1-indexed terminal coordinates
		if !strings.Contains(out.String(), "\x1b[2;3H") {
			t.Errorf("expected cursor positioning in %q", out.String())
		}
	})
}
