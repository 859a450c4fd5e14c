package config

import "sync/atomic"

// Runtime holds the most recent good document behind an atomic pointer.
// The watch loop stores a new document after each successful reload;
// readers call Get per operation and never observe a half-updated state.
type Runtime struct {
	ptr atomic.Pointer[Document]
}

// NewRuntime creates a Runtime seeded with the given document.
func NewRuntime(initial *Document) *Runtime {
	r := &Runtime{}
	r.ptr.Store(initial)
	return r
}

// Get returns the current document. Lock-free; safe for concurrent use.
func (r *Runtime) Get() *Document {
	return r.ptr.Load()
}

// Store atomically replaces the current document.
func (r *Runtime) Store(doc *Document) {
	r.ptr.Store(doc)
}
