package buffer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func generateBenchmarkFile(b *testing.B, lines int) string {
	b.Helper()
	path := filepath.Join(b.TempDir(), fmt.Sprintf("bench_%d.c", lines))
	f, err := os.Create(path)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < lines; i++ {
		fmt.Fprintf(f, "int line%d = %d; /* The quick brown fox */\n", i+1, i)
	}
	f.Close()
	return path
}

func BenchmarkOpen(b *testing.B) {
	for _, n := range []int{0, 100, 1000, 10000} {
		path := generateBenchmarkFile(b, n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := New(0).Open(path); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInsertChar(b *testing.B) {
	d := newDoc("")
	d.SetFilename("bench.c")
	for i := 0; i < b.N; i++ {
		d.InsertChar(0, d.RowSize(0), 'a')
		if d.RowSize(0) > 1000 {
			d.Load([]string{""})
		}
	}
}

func BenchmarkCommentCascade(b *testing.B) {
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = "int x = 1; // The quick brown fox jumps over the lazy dog."
	}
	d := newDoc(lines...)
	d.SetFilename("bench.c")
	for i := 0; i < b.N; i++ {
		d.InsertChar(0, 0, '/')
		d.InsertChar(0, 1, '*')
		d.DeleteChar(0, 2)
		d.DeleteChar(0, 1)
	}
}

func BenchmarkSave(b *testing.B) {
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = "The quick brown fox jumps over the lazy dog."
	}
	d := newDoc(lines...)
	d.SetFilename(filepath.Join(b.TempDir(), "save_test.txt"))
	for i := 0; i < b.N; i++ {
		if _, err := d.Save(); err != nil {
			b.Fatal(err)
		}
	}
}
