package enum

import "go.uber.org/zap"

// Named is an open-ended collection of lists keyed by name. Records are
// created on the first insert under a new name. Not safe for concurrent
// mutation.
type Named struct {
	records  map[string]*List
	order    []string
	listCap  int
	maxNames int
	log      *zap.Logger
}

// NewNamed returns an empty collection. Only WithLogger, WithListCapacity
// and WithMaxNames apply.
func NewNamed(opts ...Option) *Named {
	return newNamed(buildOptions(opts))
}

func newNamed(o options) *Named {
	return &Named{
		records:  make(map[string]*List),
		listCap:  o.listCap,
		maxNames: o.maxNames,
		log:      o.logger,
	}
}

// Record returns the list bound to name. ok is false when name was never
// added. A record that was cleared still reports ok with an empty list.
func (n *Named) Record(name string) (list *List, ok bool) {
	l, ok := n.records[name]
	return l, ok
}

// List returns the list bound to name, or nil.
func (n *Named) List(name string) *List {
	return n.records[name]
}

// Add inserts label/value into the list named name, creating the record if
// needed. The label is never retained when an error is returned.
func (n *Named) Add(name, label string, value int) error {
	l, ok := n.records[name]
	if !ok {
		if n.maxNames > 0 && len(n.records) >= n.maxNames {
			n.log.Debug("enum record limit reached", zap.String("list", name), zap.Int("max_names", n.maxNames))
			return ErrNoMemory
		}
		l = NewList(n.listCap)
		if n.records == nil {
			n.records = make(map[string]*List)
		}
		n.records[name] = l
		n.order = append(n.order, name)
	}
	if err := l.Add(label, value); err != nil {
		n.log.Debug("enum insert rejected", zap.String("list", name), zap.Int("value", value), zap.Error(err))
		return err
	}
	return nil
}

// FindValue looks label up in the list named name.
func (n *Named) FindValue(name, label string) (int, bool) {
	return n.List(name).FindValue(label)
}

// FindValueFold looks label up case-insensitively in the list named name.
func (n *Named) FindValueFold(name, label string) (int, bool) {
	return n.List(name).FindValueFold(label)
}

// FindLabel looks value up in the list named name.
func (n *Named) FindLabel(name string, value int) (string, bool) {
	return n.List(name).FindLabel(value)
}

// FreeValue returns the next free value in the list named name.
func (n *Named) FreeValue(name string) (int, bool) {
	return n.List(name).FreeValue()
}

// Clear empties the list named name. The name stays registered.
func (n *Named) Clear(name string) {
	n.records[name].Clear()
}

// ClearAll empties every list. Names stay registered.
func (n *Named) ClearAll() {
	for _, l := range n.records {
		l.Clear()
	}
}

// Names returns the registered names. Callers must not rely on the order.
func (n *Named) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Teardown removes every record.
func (n *Named) Teardown() {
	for name, l := range n.records {
		l.Clear()
		delete(n.records, name)
	}
	n.order = nil
}
