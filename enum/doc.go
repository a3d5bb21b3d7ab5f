// Package enum stores enumerations: ordered lists of label/value pairs that
// translate wire-level integer codes to display strings and back.
//
// Lists are addressed two ways:
//
//   - Indexed: a fixed-size table keyed by (major, minor), for example
//     object type x object subtype. Bounds are set by Init.
//   - Named: lists keyed by an arbitrary string, created on first use.
//
// Both share List, which enforces one pair per value. Labels may repeat.
//
// A Registry bundles one of each with an explicit lifecycle:
//
//	reg := enum.New(enum.WithLogger(logger))
//	if err := reg.Init(); err != nil {
//	    return err
//	}
//	defer reg.Teardown()
//
//	_ = reg.Indexed().Add(enum.MajorApplication, 3, "up", 1)
//	v, ok := reg.Indexed().FindValue(enum.MajorApplication, 3, "up")
//
// # Ownership
//
// An Add that fails (ErrAlreadyExists, ErrNoMemory, ErrOutOfBounds) leaves
// the target untouched and never keeps the label. Callers do not need to
// retry or clean up.
//
// # Concurrency
//
// Nothing here locks. Load everything in one phase, then read from as many
// goroutines as needed; any Add, Clear or Teardown must be serialized with
// all readers by the caller.
package enum
