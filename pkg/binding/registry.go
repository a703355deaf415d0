package binding

import "sync"

// Subscriber receives the new value published under a control id.
type Subscriber[T any] func(value T)

// Registry holds the current reactive value for each control id and fans
// published values out to subscribers. It is the server-side half of the
// input binding: when an upload (or any other interaction) completes, its
// result is published here under the originating control's id.
type Registry[T any] struct {
	mu     sync.RWMutex
	values map[string]T
	subs   map[string]map[uint64]Subscriber[T]
	nextID uint64
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		values: make(map[string]T),
		subs:   make(map[string]map[uint64]Subscriber[T]),
	}
}

// Publish stores the value for a control id and notifies subscribers.
// The previous value for the id, if any, is replaced: a control has at
// most one live value at a time.
func (r *Registry[T]) Publish(id string, value T) {
	if id == "" {
		return
	}

	r.mu.Lock()
	r.values[id] = value
	// Copy before notify so subscriber callbacks run without the lock held.
	var notify []Subscriber[T]
	for _, sub := range r.subs[id] {
		notify = append(notify, sub)
	}
	r.mu.Unlock()

	for _, sub := range notify {
		sub(value)
	}
}

// Value returns the current value for a control id and whether one has
// been published yet.
func (r *Registry[T]) Value(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[id]
	return v, ok
}

// Invalidate drops the value for a control id without publishing a new one.
func (r *Registry[T]) Invalidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, id)
}

// Subscribe registers a callback for values published under a control id.
// The returned function cancels the subscription; it is safe to call more
// than once.
func (r *Registry[T]) Subscribe(id string, sub Subscriber[T]) (cancel func()) {
	if sub == nil {
		return func() {}
	}

	r.mu.Lock()
	r.nextID++
	sid := r.nextID
	if r.subs[id] == nil {
		r.subs[id] = make(map[uint64]Subscriber[T])
	}
	r.subs[id][sid] = sub
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if subs, ok := r.subs[id]; ok {
			delete(subs, sid)
			if len(subs) == 0 {
				delete(r.subs, id)
			}
		}
	}
}
