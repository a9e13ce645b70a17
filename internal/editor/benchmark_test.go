package editor

import (
	"fmt"
	"testing"

	"kilo/internal/terminal"
)

func BenchmarkRefresh(b *testing.B) {
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = fmt.Sprintf("int line%d = %d; /* The quick brown fox */ \"str\"", i, i)
	}
	ft := &fakeTerm{rows: 50, cols: 120}
	s, err := New(ft, DefaultOptions(), nil)
	if err != nil {
		b.Fatal(err)
	}
	s.doc.SetFilename("bench.c")
	s.doc.Load(lines)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.out.Reset()
		if err := s.Refresh(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMovement(b *testing.B) {
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = "\tThe quick brown fox jumps over the lazy dog."
	}
	ft := &fakeTerm{rows: 50, cols: 120}
	s, err := New(ft, DefaultOptions(), nil)
	if err != nil {
		b.Fatal(err)
	}
	s.doc.Load(lines)
	keys := []terminal.Key{
		terminal.KeyArrowDown, terminal.KeyArrowRight, terminal.KeyEnd,
		terminal.KeyPageDown, terminal.KeyArrowUp, terminal.KeyHome, terminal.KeyPageUp,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			s.ProcessKey(k)
		}
		s.scroll()
	}
}

func BenchmarkTyping(b *testing.B) {
	ft := &fakeTerm{rows: 50, cols: 120}
	s, err := New(ft, DefaultOptions(), nil)
	if err != nil {
		b.Fatal(err)
	}
	s.doc.SetFilename("bench.go")
	for i := 0; i < b.N; i++ {
		if _, err := s.ProcessKey('a'); err != nil {
			b.Fatal(err)
		}
		if s.view.cx > 200 {
			s.ProcessKey('\r')
		}
	}
}
