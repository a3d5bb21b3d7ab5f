package enum

import (
	"fmt"

	"go.uber.org/zap"
)

// Coord addresses one slot of an Indexed table.
type Coord struct {
	Major uint
	Minor uint
}

// String returns the "major:minor" form used in config keys.
func (c Coord) String() string { return fmt.Sprintf("%d:%d", c.Major, c.Minor) }

// Indexed is a fixed-size two-level table of lists keyed by (major, minor).
// Slots are populated on first insert. Not safe for concurrent mutation.
type Indexed struct {
	table    [][]*List
	maxMajor uint
	maxMinor uint
	listCap  int
	log      *zap.Logger
}

// NewIndexed returns an uninitialized table. Call Init before inserting.
// Only WithLogger and WithListCapacity apply.
func NewIndexed(opts ...Option) *Indexed {
	return newIndexed(buildOptions(opts))
}

func newIndexed(o options) *Indexed {
	return &Indexed{listCap: o.listCap, log: o.logger}
}

// Init allocates a maxMajor x maxMinor table. Calling Init on an
// initialized table is a no-op and keeps the existing bounds.
func (x *Indexed) Init(maxMajor, maxMinor uint) error {
	if x.table != nil {
		return nil
	}
	if maxMajor == 0 || maxMinor == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, maxMajor, maxMinor)
	}
	x.table = make([][]*List, maxMajor)
	for i := range x.table {
		x.table[i] = make([]*List, maxMinor)
	}
	x.maxMajor, x.maxMinor = maxMajor, maxMinor
	x.log.Debug("enum table initialized", zap.Uint("max_major", maxMajor), zap.Uint("max_minor", maxMinor))
	return nil
}

// Initialized reports whether Init has allocated the table.
func (x *Indexed) Initialized() bool { return x.table != nil }

// Bounds returns the configured bounds; both are zero before Init and
// after Teardown.
func (x *Indexed) Bounds() (maxMajor, maxMinor uint) { return x.maxMajor, x.maxMinor }

// Cell is a handle to one table slot. The slot's list is created on the
// first Add through the handle.
type Cell struct {
	slot    **List
	listCap int
}

// List returns the slot's list, or nil if nothing was ever added.
func (c *Cell) List() *List { return *c.slot }

// Add inserts into the slot, allocating its list if needed.
func (c *Cell) Add(label string, value int) error {
	if *c.slot == nil {
		l := NewList(c.listCap)
		if err := l.Add(label, value); err != nil {
			return err
		}
		*c.slot = l
		return nil
	}
	return (*c.slot).Add(label, value)
}

// Clear empties the slot.
func (c *Cell) Clear() { *c.slot = nil }

// Cell returns the handle for (major, minor). ok is false when either
// coordinate is outside the bounds or the table is not initialized.
func (x *Indexed) Cell(major, minor uint) (cell *Cell, ok bool) {
	if major >= x.maxMajor || minor >= x.maxMinor {
		return nil, false
	}
	return &Cell{slot: &x.table[major][minor], listCap: x.listCap}, true
}

// List returns the list at (major, minor), or nil when the slot is empty
// or out of bounds.
func (x *Indexed) List(major, minor uint) *List {
	c, ok := x.Cell(major, minor)
	if !ok {
		return nil
	}
	return c.List()
}

// Add inserts label/value at (major, minor). The label is never retained
// when an error is returned.
func (x *Indexed) Add(major, minor uint, label string, value int) error {
	if x.table == nil {
		return ErrNotInitialized
	}
	c, ok := x.Cell(major, minor)
	if !ok {
		x.log.Debug("enum insert out of bounds",
			zap.Uint("major", major), zap.Uint("minor", minor), zap.Int("value", value))
		return fmt.Errorf("%w: %d:%d outside %dx%d", ErrOutOfBounds, major, minor, x.maxMajor, x.maxMinor)
	}
	if err := c.Add(label, value); err != nil {
		x.log.Debug("enum insert rejected",
			zap.Uint("major", major), zap.Uint("minor", minor), zap.Int("value", value), zap.Error(err))
		return err
	}
	return nil
}

// FindValue looks label up in the list at (major, minor).
func (x *Indexed) FindValue(major, minor uint, label string) (int, bool) {
	return x.List(major, minor).FindValue(label)
}

// FindValueFold looks label up case-insensitively at (major, minor).
func (x *Indexed) FindValueFold(major, minor uint, label string) (int, bool) {
	return x.List(major, minor).FindValueFold(label)
}

// FindLabel looks value up in the list at (major, minor).
func (x *Indexed) FindLabel(major, minor uint, value int) (string, bool) {
	return x.List(major, minor).FindLabel(value)
}

// FreeValue returns the next free value at (major, minor).
func (x *Indexed) FreeValue(major, minor uint) (int, bool) {
	return x.List(major, minor).FreeValue()
}

// ClearList empties the slot at (major, minor). Out of bounds is a no-op.
func (x *Indexed) ClearList(major, minor uint) {
	if c, ok := x.Cell(major, minor); ok {
		c.Clear()
	}
}

// Keys returns the populated coordinates in row-major order.
func (x *Indexed) Keys() []Coord {
	var keys []Coord
	for major, row := range x.table {
		for minor, l := range row {
			if l.Len() > 0 {
				keys = append(keys, Coord{Major: uint(major), Minor: uint(minor)})
			}
		}
	}
	return keys
}

// Teardown releases every list and the table and resets the bounds to
// zero. Init must be called again before the next insert.
func (x *Indexed) Teardown() {
	for _, row := range x.table {
		for i, l := range row {
			l.Clear()
			row[i] = nil
		}
	}
	x.table = nil
	x.maxMajor, x.maxMinor = 0, 0
	x.log.Debug("enum table torn down")
}
