package agents

import "sync"

// Constructor builds a fresh agent. Registries call it at most once per id
// between registrations.
type Constructor func() Agent

// Registry maps agent ids to constructors and caches one instance per id.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	order     []string
	ctors     map[string]Constructor
	instances map[string]Agent
}

func NewRegistry() *Registry {
	return &Registry{
		ctors:     map[string]Constructor{},
		instances: map[string]Agent{},
	}
}

// Register adds a constructor under id. It returns false without touching the
// existing entry when id is already taken.
func (r *Registry) Register(id string, ctor Constructor) bool {
	if id == "" || ctor == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[id]; exists {
		return false
	}
	r.ctors[id] = ctor
	r.order = append(r.order, id)
	return true
}

// Unregister drops the constructor and any cached instance for id.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[id]; !exists {
		return false
	}
	delete(r.ctors, id)
	delete(r.instances, id)
	for i, registered := range r.order {
		if registered == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Registered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ctors[id]
	return ok
}

// Instance returns the singleton for id, constructing it on first use.
func (r *Registry) Instance(id string) (Agent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if agent, ok := r.instances[id]; ok {
		return agent, true
	}
	ctor, ok := r.ctors[id]
	if !ok {
		return nil, false
	}
	agent := ctor()
	r.instances[id] = agent
	return agent, true
}

// IDs lists registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func (r *Registry) Info(id string) (Info, bool) {
	agent, ok := r.Instance(id)
	if !ok {
		return Info{}, false
	}
	return agent.Info(), true
}
