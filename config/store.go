package config

import (
	"io"
	"sort"
	"strings"
)

// Store collects generated config lines per application type, in the order
// they were stored. It is what directive writers such as
// enumconf.StoreAll emit into.
type Store struct {
	lines map[string][]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{lines: make(map[string][]string)}
}

// StoreLine appends line to the output for appType.
func (s *Store) StoreLine(appType, line string) {
	if s.lines == nil {
		s.lines = make(map[string][]string)
	}
	s.lines[appType] = append(s.lines[appType], line)
}

// Lines returns a copy of the lines stored for appType.
func (s *Store) Lines(appType string) []string {
	src := s.lines[appType]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AppTypes returns the application types with stored lines, sorted.
func (s *Store) AppTypes() []string {
	out := make([]string, 0, len(s.lines))
	for t := range s.lines {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// WriteLines writes the lines for appType to w, one per line.
func (s *Store) WriteLines(w io.Writer, appType string) (int64, error) {
	var b strings.Builder
	for _, line := range s.lines[appType] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Reset drops every stored line.
func (s *Store) Reset() {
	clear(s.lines)
}
