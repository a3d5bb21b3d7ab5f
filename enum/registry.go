package enum

import "go.uber.org/zap"

// Registry owns one Indexed table and one Named collection. It replaces
// process-wide enum state: the host creates one, initializes it, and passes
// it to whatever needs lookups.
type Registry struct {
	indexed *Indexed
	named   *Named
	opt     options
}

// New returns a registry configured by opts. Call Init before indexed
// inserts; named inserts work immediately.
func New(opts ...Option) *Registry {
	o := buildOptions(opts)
	return &Registry{
		indexed: newIndexed(o),
		named:   newNamed(o),
		opt:     o,
	}
}

// Init allocates the indexed table with the configured bounds. It is
// idempotent.
func (r *Registry) Init() error {
	return r.indexed.Init(r.opt.maxMajor, r.opt.maxMinor)
}

// Indexed returns the (major, minor) addressed table.
func (r *Registry) Indexed() *Indexed { return r.indexed }

// Named returns the name addressed collection.
func (r *Registry) Named() *Named { return r.named }

// Logger returns the registry's logger.
func (r *Registry) Logger() *zap.Logger { return r.opt.logger }

// Teardown removes every named record and releases the indexed table. Init
// may be called again afterwards.
func (r *Registry) Teardown() {
	r.named.Teardown()
	r.indexed.Teardown()
	r.opt.logger.Debug("enum registry torn down")
}
