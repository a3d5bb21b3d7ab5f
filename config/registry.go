// Package config is the host side of enum configuration: directive handler
// registration, a line-oriented config reader, a store for generated lines,
// and file/env options.
package config

import (
	"fmt"
	"sort"
	"sync"
)

// DirectiveFunc handles one config line. keyword is the directive word;
// rest is the remainder of the line with surrounding whitespace removed.
type DirectiveFunc func(keyword, rest string) error

type handlerKey struct {
	appType string
	keyword string
}

// Registry maps (application type, keyword) to directive handlers. Safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[handlerKey]DirectiveFunc
}

// NewRegistry returns an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[handlerKey]DirectiveFunc)}
}

// Register adds a handler for keyword under appType. Overwrites any existing registration.
func (r *Registry) Register(appType, keyword string, fn DirectiveFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handlers == nil {
		r.handlers = make(map[handlerKey]DirectiveFunc)
	}
	r.handlers[handlerKey{appType, keyword}] = fn
}

// Get returns the handler for keyword under appType, or nil and false if not found.
func (r *Registry) Get(appType, keyword string) (DirectiveFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[handlerKey{appType, keyword}]
	return fn, ok
}

// MustGet returns the handler for keyword under appType, or panics if not found.
func (r *Registry) MustGet(appType, keyword string) DirectiveFunc {
	fn, ok := r.Get(appType, keyword)
	if !ok {
		panic(fmt.Sprintf("config: directive %q not registered for %q", keyword, appType))
	}
	return fn
}

// Keywords returns the keywords registered for appType, sorted.
func (r *Registry) Keywords(appType string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for k := range r.handlers {
		if k.appType == appType {
			out = append(out, k.keyword)
		}
	}
	sort.Strings(out)
	return out
}
