package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSaveAfterOpenRoundTrips(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"a\n\tb\nc\n", "a\n\tb\nc\n"},
		{"a\n\tb\nc", "a\n\tb\nc\n"},
		{"x\r\ny\r\n", "x\ny\n"},
		{"\n\n", "\n\n"},
		{"", ""},
	}
	for _, tc := range cases {
		path := writeFile(t, tc.in)
		d := New(0)
		if err := d.Open(path); err != nil {
			t.Fatalf("open: %v", err)
		}
		if d.Filename() != path || d.Syntax() == nil {
			t.Fatalf("open must bind the path and select syntax")
		}
		n, err := d.Save()
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tc.out || n != len(tc.out) {
			t.Errorf("%q: saved %q (%d bytes), want %q", tc.in, got, n, tc.out)
		}
	}
}

func TestSaveTruncatesLongerFile(t *testing.T) {
	path := writeFile(t, "a much longer original body\nwith two lines\n")
	d := New(0)
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	d.Load([]string{"short"})
	if _, err := d.Save(); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "short\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestSaveClearsDirtyOnlyOnSuccess(t *testing.T) {
	d := newDoc("text")
	d.InsertChar(0, 0, 'x')
	if _, err := d.Save(); !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}

	d.SetFilename(filepath.Join(t.TempDir(), "missing", "dir", "f.txt"))
	if _, err := d.Save(); err == nil {
		t.Fatalf("saving into a missing directory must fail")
	}
	if d.Dirty() == 0 {
		t.Fatalf("failed save cleared the dirty counter")
	}

	d.SetFilename(filepath.Join(t.TempDir(), "f.txt"))
	if _, err := d.Save(); err != nil {
		t.Fatal(err)
	}
	if d.Dirty() != 0 {
		t.Fatalf("dirty = %d after save", d.Dirty())
	}
}

func TestOpenMissingFile(t *testing.T) {
	d := newDoc("keep")
	err := d.Open(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if d.NumRows() != 1 || rowText(d, 0) != "keep" {
		t.Fatalf("failed open must keep the document")
	}
}

func TestLoadLinesStripsTerminators(t *testing.T) {
	lines, err := LoadLines(writeFile(t, "one\r\ntwo\nthree\r"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
