package event

// Handler receives an emitted event type
type Handler func(Type)

type subscription struct {
	id      uint64
	handler Handler
}

// Emitter is a single-threaded pub/sub hub for carousel signals. All calls
// happen on the owning loop, so no locking is used. Removal is expressed as
// disposers returned from On: invoking a disposer twice is a no-op, matching
// the scoped-registration teardown model
type Emitter struct {
	nextID   uint64
	handlers map[Type][]subscription
}

// NewEmitter creates an empty emitter
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[Type][]subscription),
	}
}

// On registers a handler for one event type and returns its disposer
func (e *Emitter) On(t Type, h Handler) func() {
	if h == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.handlers[t] = append(e.handlers[t], subscription{id: id, handler: h})
	return func() {
		e.off(t, id)
	}
}

// off removes one subscription; absent ids are ignored so disposers stay
// idempotent
func (e *Emitter) off(t Type, id uint64) {
	subs := e.handlers[t]
	for i, s := range subs {
		if s.id == id {
			e.handlers[t] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Emit notifies every handler registered for t, in registration order
func (e *Emitter) Emit(t Type) {
	// Copy the subscriptions so a handler unregistering itself or a sibling
	// mid-emit cannot shift entries under the loop; off mutates in place
	subs := append([]subscription(nil), e.handlers[t]...)
	for _, s := range subs {
		s.handler(t)
	}
}

// Clear drops every registration at once, used on engine teardown
func (e *Emitter) Clear() {
	e.handlers = make(map[Type][]subscription)
}
