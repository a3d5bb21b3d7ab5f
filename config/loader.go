package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dcshock/enumreg/enum"
	"github.com/dcshock/enumreg/enumconf"
)

// Loader wires an enum.Registry into the config reader and store: "enum"
// lines read through it land in Enums, and Save writes Enums back out as
// "enum" lines.
type Loader struct {
	Enums    *enum.Registry
	Handlers *Registry
	Store    *Store

	opts   Options
	reader *Reader
	log    *zap.Logger
}

// NewLoader builds and initializes an enum registry from opts and registers
// its "enum" handler under opts.AppType. A nil logger disables logging.
func NewLoader(opts Options, log *zap.Logger) (*Loader, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.AppType == "" {
		return nil, fmt.Errorf("app type required")
	}
	enums := enum.New(append(opts.RegistryOptions(), enum.WithLogger(log))...)
	if err := enums.Init(); err != nil {
		return nil, fmt.Errorf("init enum registry: %w", err)
	}
	handlers := NewRegistry()
	handlers.Register(opts.AppType, enumconf.Keyword, enumconf.Handler(enums))
	return &Loader{
		Enums:    enums,
		Handlers: handlers,
		Store:    NewStore(),
		opts:     opts,
		reader:   NewReader(handlers, opts.AppType, log),
		log:      log,
	}, nil
}

// Options returns the options the loader was built with.
func (l *Loader) Options() Options { return l.opts }

// LoadFiles reads each path in order. It stops at the first error.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) ([]LoadStats, error) {
	out := make([]LoadStats, 0, len(paths))
	for _, p := range paths {
		stats, err := l.reader.ReadFile(ctx, p)
		out = append(out, stats)
		if err != nil {
			return out, fmt.Errorf("%s: %w", p, err)
		}
	}
	return out, nil
}

// Reader returns the loader's config reader.
func (l *Loader) Reader() *Reader { return l.reader }

// Save replaces the store's lines for the loader's app type with the
// current registry contents and returns them.
func (l *Loader) Save() []string {
	delete(l.Store.lines, l.opts.AppType)
	enumconf.StoreAll(l.Store, l.opts.AppType, l.Enums, l.opts.LineWidth)
	return l.Store.Lines(l.opts.AppType)
}

// Close tears down the enum registry.
func (l *Loader) Close() {
	l.Enums.Teardown()
}
