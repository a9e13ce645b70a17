package buffer

import "testing"

var mappingSamples = []string{
	"",
	"plain text",
	"\t",
	"\t\t",
	"a\tb",
	"abcdefg\th",
	"abcdefgh\ti",
	"\tx\t\ty z\t",
}

func expectedRenderLen(chars []byte, tabStop int) int {
	col := 0
	for _, c := range chars {
		if c == '\t' {
			col += tabStop - col%tabStop
			continue
		}
		col++
	}
	return col
}

func TestRenderExpandsTabs(t *testing.T) {
	got := string(renderChars(nil, []byte("\tab\tc"), 8))
	want := "        ab      c"
	if got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	for _, s := range mappingSamples {
		for _, stop := range []int{1, 4, 8} {
			r := renderChars(nil, []byte(s), stop)
			if len(r) != expectedRenderLen([]byte(s), stop) {
				t.Errorf("%q stop %d: render length %d, want %d", s, stop, len(r), expectedRenderLen([]byte(s), stop))
			}
			if len(r) < len(s) {
				t.Errorf("%q: render shorter than raw", s)
			}
		}
	}
}

func TestColumnMappingRoundTrip(t *testing.T) {
	for _, s := range mappingSamples {
		chars := []byte(s)
		for cx := 0; cx <= len(chars); cx++ {
			rx := CharToRender(chars, cx, DefaultTabStop)
			if back := RenderToChar(chars, rx, DefaultTabStop); back != cx {
				t.Errorf("%q: cx %d -> rx %d -> cx %d", s, cx, rx, back)
			}
		}
	}
}

func TestRenderToCharInsideTab(t *testing.T) {
	chars := []byte("\tx")
	for rx := 0; rx < 8; rx++ {
		if cx := RenderToChar(chars, rx, 8); cx != 0 {
			t.Fatalf("rx %d inside the tab mapped to %d", rx, cx)
		}
	}
	if cx := RenderToChar(chars, 8, 8); cx != 1 {
		t.Fatalf("rx 8 mapped to %d, want 1", cx)
	}
	if cx := RenderToChar(chars, 99, 8); cx != 2 {
		t.Fatalf("rx past the end mapped to %d, want 2", cx)
	}
}

func TestCharToRenderClampsColumn(t *testing.T) {
	if rx := CharToRender([]byte("a\t"), 10, 8); rx != 8 {
		t.Fatalf("rx = %d, want 8", rx)
	}
}

func TestRowSizes(t *testing.T) {
	d := newDoc("a\tb")
	r := d.Row(0)
	if r.Size() != 3 {
		t.Fatalf("Size = %d, want 3", r.Size())
	}
	if r.RenderSize() != 9 {
		t.Fatalf("RenderSize = %d, want 9", r.RenderSize())
	}
	if len(r.Highlight()) != r.RenderSize() {
		t.Fatalf("highlight length %d != render size %d", len(r.Highlight()), r.RenderSize())
	}
}
