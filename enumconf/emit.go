package enumconf

import (
	"strconv"
	"strings"

	"github.com/dcshock/enumreg/enum"
)

// DefaultLineWidth is the line budget used when a caller passes width <= 0.
const DefaultLineWidth = 2048

// Storer receives generated config lines for an application type.
type Storer interface {
	StoreLine(appType, line string)
}

// Emit renders list as "enum <key> value:label ..." lines. A token that
// would push the current line past width starts a new line with the same
// prefix. A token wider than a fresh line is still written whole on a line
// of its own. Every pair is emitted once, in list order. An empty list
// yields a single line holding only the prefix.
func Emit(list *enum.List, key string, width int) []string {
	if width <= 0 {
		width = DefaultLineWidth
	}
	prefix := Keyword + " " + quoteWord(key)

	var (
		lines  []string
		line   strings.Builder
		filled bool
	)
	line.WriteString(prefix)
	for value, label := range list.All() {
		tok := " " + quoteWord(strconv.Itoa(value)+":"+label)
		if filled && line.Len()+len(tok) > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(prefix)
		}
		line.WriteString(tok)
		filled = true
	}
	return append(lines, line.String())
}

// StoreIndexed emits the list at (major, minor) to store under appType.
func StoreIndexed(store Storer, appType string, idx *enum.Indexed, major, minor uint, width int) {
	key := enum.Coord{Major: major, Minor: minor}.String()
	for _, line := range Emit(idx.List(major, minor), key, width) {
		store.StoreLine(appType, line)
	}
}

// StoreNamed emits the list called name to store under appType.
func StoreNamed(store Storer, appType string, named *enum.Named, name string, width int) {
	for _, line := range Emit(named.List(name), name, width) {
		store.StoreLine(appType, line)
	}
}

// StoreAll emits every populated indexed slot in row-major order, then every
// named list in registration order.
func StoreAll(store Storer, appType string, reg *enum.Registry, width int) {
	for _, c := range reg.Indexed().Keys() {
		StoreIndexed(store, appType, reg.Indexed(), c.Major, c.Minor, width)
	}
	for _, name := range reg.Named().Names() {
		StoreNamed(store, appType, reg.Named(), name, width)
	}
}
