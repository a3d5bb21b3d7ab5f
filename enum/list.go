package enum

import "iter"

// Pair is a single enumeration member.
type Pair struct {
	Label string
	Value int
}

// List is an ordered set of label/value pairs. Values are unique within a
// list; labels are not (a repeated label is an alias).
//
// A nil *List is valid for every read method and behaves as an absent list.
// The zero value is an empty list with no capacity limit.
type List struct {
	pairs []Pair
	max   int
}

// NewList returns an empty list that holds at most max pairs. max <= 0 means
// unlimited.
func NewList(max int) *List {
	if max < 0 {
		max = 0
	}
	return &List{max: max}
}

// Len returns the number of pairs in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.pairs)
}

// Pairs returns a copy of the list contents in insertion order.
func (l *List) Pairs() []Pair {
	if l == nil || len(l.pairs) == 0 {
		return nil
	}
	out := make([]Pair, len(l.pairs))
	copy(out, l.pairs)
	return out
}

// All iterates value, label in insertion order.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l == nil {
			return
		}
		for _, p := range l.pairs {
			if !yield(p.Value, p.Label) {
				return
			}
		}
	}
}

// FindValue returns the value of the first pair whose label equals label.
func (l *List) FindValue(label string) (int, bool) {
	if l == nil {
		return 0, false
	}
	for _, p := range l.pairs {
		if p.Label == label {
			return p.Value, true
		}
	}
	return 0, false
}

// FindValueFold is FindValue with ASCII case-insensitive label comparison.
func (l *List) FindValueFold(label string) (int, bool) {
	if l == nil {
		return 0, false
	}
	for _, p := range l.pairs {
		if equalFoldASCII(p.Label, label) {
			return p.Value, true
		}
	}
	return 0, false
}

// FindLabel returns the label of the pair holding value.
func (l *List) FindLabel(value int) (string, bool) {
	if l == nil {
		return "", false
	}
	for _, p := range l.pairs {
		if p.Value == value {
			return p.Label, true
		}
	}
	return "", false
}

// FreeValue returns one more than the largest value in the list, never less
// than 1. ok is false when the list is absent or empty, which callers must
// not confuse with a populated list whose next free value happens to be 1.
func (l *List) FreeValue() (value int, ok bool) {
	if l == nil || len(l.pairs) == 0 {
		return 0, false
	}
	highest := 0
	for _, p := range l.pairs {
		if p.Value > highest {
			highest = p.Value
		}
	}
	return highest + 1, true
}

// Add appends label under value. It returns ErrAlreadyExists if value is
// already present and ErrNoMemory if the list is full. On error the list is
// unchanged and label is not retained.
func (l *List) Add(label string, value int) error {
	for _, p := range l.pairs {
		if p.Value == value {
			return ErrAlreadyExists
		}
	}
	if l.max > 0 && len(l.pairs) >= l.max {
		return ErrNoMemory
	}
	l.pairs = append(l.pairs, Pair{Label: label, Value: value})
	return nil
}

// Clear drops every pair. The capacity limit is kept.
func (l *List) Clear() {
	if l == nil {
		return
	}
	clear(l.pairs)
	l.pairs = l.pairs[:0]
}

// equalFoldASCII reports whether a and b are equal under ASCII case folding.
// Bytes outside A-Z/a-z must match exactly.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
