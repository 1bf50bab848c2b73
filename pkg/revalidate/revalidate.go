// Package revalidate tracks page-path invalidation signals. Mutators
// call Invalidate with every page path that renders the data they
// changed; render-side callers compare generations to decide whether a
// cached composition is stale.
package revalidate

import "sync"

type Registry struct {
	mu          sync.RWMutex
	generations map[string]uint64
}

func NewRegistry() *Registry {
	return &Registry{
		generations: make(map[string]uint64),
	}
}

// Invalidate bumps the generation of each given page path.
func (r *Registry) Invalidate(paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, path := range paths {
		r.generations[path]++
	}
}

// Generation returns the current generation of a page path. A path that
// was never invalidated is at generation zero.
func (r *Registry) Generation(path string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generations[path]
}
