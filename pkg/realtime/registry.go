package realtime

import (
	"sort"
	"sync"
)

// Topic holds the current state for one key and the broadcaster its
// subscribers listen on.
type Topic[T any] struct {
	ID    string
	State T
	hub   *Broadcaster
}

// Registry maps keys to topics. Replacing a topic's state keeps its
// broadcaster, so open streams survive reloads.
type Registry[T any] struct {
	mu     sync.RWMutex
	topics map[string]*Topic[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{topics: make(map[string]*Topic[T])}
}

// Put stores state under id, creating the topic if needed. It reports whether the topic already existed.
func (r *Registry[T]) Put(id string, state T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.topics[id]; ok {
		t.State = state
		return true
	}
	r.topics[id] = &Topic[T]{ID: id, State: state, hub: NewBroadcaster(DefaultBuffer)}
	return false
}

// Get returns the current state for id.
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.topics[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.State, true
}

// Delete removes a topic and closes its subscribers.
func (r *Registry[T]) Delete(id string) bool {
	r.mu.Lock()
	t, ok := r.topics[id]
	delete(r.topics, id)
	r.mu.Unlock()
	if ok {
		t.hub.Close()
	}
	return ok
}

// IDs returns every topic id in lexical order.
func (r *Registry[T]) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.topics))
	for id := range r.topics {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Broadcaster returns the broadcaster for an existing topic.
func (r *Registry[T]) Broadcaster(id string) (*Broadcaster, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.topics[id]
	if !ok {
		return nil, false
	}
	return t.hub, true
}

// Publish notifies the topic's subscribers. Unknown ids are ignored.
func (r *Registry[T]) Publish(id string, event Event) int {
	hub, ok := r.Broadcaster(id)
	if !ok {
		return 0
	}
	return hub.Publish(event)
}
