package dashboard

import (
	"fmt"
	"sync"
)

// Registry owns every dashboard feature from startup until shutdown.
// Registration order is preserved and breaks navigation ties.
type Registry struct {
	mu       sync.RWMutex
	features []Feature
	index    map[string]int
	states   map[string]Lifecycle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index:  make(map[string]int),
		states: make(map[string]Lifecycle),
	}
}

// Register validates f and adds it to the registry.
func (r *Registry) Register(f Feature) error {
	if err := Validate(f); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := f.ID()
	if _, exists := r.index[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFeature, id)
	}
	r.index[id] = len(r.features)
	r.features = append(r.features, f)
	r.states[id] = Registered
	return nil
}

// Get looks a feature up by identifier.
func (r *Registry) Get(id string) (Feature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.features[i], true
}

// All returns the registered features in registration order.
func (r *Registry) All() []Feature {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Feature, len(r.features))
	copy(out, r.features)
	return out
}

// State returns the last lifecycle transition recorded for id.
func (r *Registry) State(id string) Lifecycle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.states[id]; ok {
		return s
	}
	return Unregistered
}

func (r *Registry) transition(id string, to Lifecycle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[id]; ok {
		r.states[id] = to
	}
}
