package editor

import (
	"bytes"

	"kilo/internal/buffer"
	"kilo/internal/syntax"
	"kilo/internal/terminal"
)

// search is the state of one incremental search.
type search struct {
	lastMatch int // row of the last match, -1 for none
	direction int // 1 forward, -1 backward

	// The row carrying the Match overlay and its highlight before the
	// overlay was applied.
	savedRow int
	savedHL  []syntax.Class
}

func newSearch() *search {
	return &search{lastMatch: -1, direction: 1, savedRow: -1}
}

func (st *search) restore(doc *buffer.Document) {
	if st.savedHL == nil {
		return
	}
	doc.RestoreHighlight(st.savedRow, st.savedHL)
	st.savedRow, st.savedHL = -1, nil
}

// find runs an incremental search on the message bar. Cancelling puts the
// cursor and viewport back where they were.
func (s *Session) find() error {
	saved := s.view
	st := newSearch()
	_, ok, err := s.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k terminal.Key) {
		s.searchStep(st, query, k)
	})
	st.restore(s.doc)
	if err != nil {
		return err
	}
	if !ok {
		s.view = saved
	}
	return nil
}

// searchStep moves to the next match of query for key k. Arrow keys step
// through matches, any edit to the query restarts from the top.
func (s *Session) searchStep(st *search, query string, k terminal.Key) {
	st.restore(s.doc)

	switch k {
	case terminal.KeyEnter, terminal.KeyEscape:
		st.lastMatch = -1
		st.direction = 1
		return
	case terminal.KeyArrowRight, terminal.KeyArrowDown:
		st.direction = 1
	case terminal.KeyArrowLeft, terminal.KeyArrowUp:
		st.direction = -1
	default:
		st.lastMatch = -1
		st.direction = 1
	}
	if query == "" {
		return
	}
	if st.lastMatch == -1 {
		st.direction = 1
	}

	n := s.doc.NumRows()
	needle := []byte(query)
	current := st.lastMatch
	for i := 0; i < n; i++ {
		current += st.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}
		idx := bytes.Index(s.doc.Row(current).Render(), needle)
		if idx < 0 {
			continue
		}
		st.lastMatch = current
		s.view.cy = current
		s.view.cx = s.doc.CharColumn(current, idx)
		s.view.preferred = s.view.cx
		// Force the next scroll to bring the match row to the top.
		s.view.rowOff = n
		st.savedRow = current
		st.savedHL = s.doc.Overlay(current, idx, idx+len(needle), syntax.Match)
		s.log.Debug("search hit", "query", query, "row", current, "col", s.view.cx)
		return
	}
}
