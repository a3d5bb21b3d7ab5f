package enum

import "go.uber.org/zap"

// Default table bounds for the (major, minor) table.
const (
	DefaultMaxMajor uint = 5
	DefaultMaxMinor uint = 32
)

// Well-known major identifiers.
const (
	MajorLibrary     uint = 0
	MajorMIB         uint = 1
	MajorApplication uint = 2
	MajorAssigned    uint = 3
)

type options struct {
	logger   *zap.Logger
	maxMajor uint
	maxMinor uint
	listCap  int
	maxNames int
}

func defaultOptions() options {
	return options{
		logger:   zap.NewNop(),
		maxMajor: DefaultMaxMajor,
		maxMinor: DefaultMaxMinor,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// Option configures a Registry, Indexed or Named.
type Option func(*options)

// WithLogger sets the logger used for rejected inserts and lifecycle events.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

// WithBounds sets the table bounds used by Registry.Init.
func WithBounds(maxMajor, maxMinor uint) Option {
	return func(o *options) {
		o.maxMajor = maxMajor
		o.maxMinor = maxMinor
	}
}

// WithListCapacity limits every list to n pairs. Adds beyond the limit fail
// with ErrNoMemory. n <= 0 means unlimited.
func WithListCapacity(n int) Option { return func(o *options) { o.listCap = n } }

// WithMaxNames limits the number of named records. n <= 0 means unlimited.
func WithMaxNames(n int) Option { return func(o *options) { o.maxNames = n } }
