package buffer

import (
	"bufio"
	"errors"
	"io"
	"os"

	"kilo/internal/syntax"
)

// LoadLines reads path and returns its lines without line terminators.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, rerr := r.ReadBytes('\n')
		if len(line) > 0 {
			for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
				line = line[:len(line)-1]
			}
			lines = append(lines, string(line))
		}
		if errors.Is(rerr, io.EOF) {
			return lines, nil
		}
		if rerr != nil {
			return nil, rerr
		}
	}
}

// WriteAll replaces the content of path with data, creating it if needed.
func WriteAll(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, err
	}
	n, err := f.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Open loads path into the document and binds it to that path.
func (d *Document) Open(path string) error {
	lines, err := LoadLines(path)
	if err != nil {
		return err
	}
	d.filename = path
	d.syntax = syntax.Select(path)
	d.Load(lines)
	return nil
}

// Save writes the document to its file. The dirty counter is cleared only
// when the write succeeds.
func (d *Document) Save() (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}
	n, err := WriteAll(d.filename, d.Bytes())
	if err != nil {
		return n, err
	}
	d.dirty = 0
	return n, nil
}
