package notify

import "drag/events"

type Listener func(*events.Event)

// Notifier is the publish/subscribe capability a component exposes to its observers.
type Notifier interface {
	On(name string, listener Listener) (off func())
	Emit(name string, event *events.Event)
}

type entry struct {
	listener Listener
	once     bool
}

// Emitter is a synchronous Notifier. The zero value is ready to use.
type Emitter struct {
	listeners map[string][]*entry
}

func (em *Emitter) On(name string, listener Listener) func() {
	return em.add(name, &entry{listener: listener})
}

// Once registers a listener that is removed after its first notification.
func (em *Emitter) Once(name string, listener Listener) func() {
	return em.add(name, &entry{listener: listener, once: true})
}

func (em *Emitter) add(name string, e *entry) func() {
	if em.listeners == nil {
		em.listeners = map[string][]*entry{}
	}
	em.listeners[name] = append(em.listeners[name], e)
	return func() { em.remove(name, e) }
}

func (em *Emitter) remove(name string, e *entry) {
	list := em.listeners[name]
	for i := range list {
		if list[i] == e {
			em.listeners[name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Off removes every listener registered for name.
func (em *Emitter) Off(name string) {
	delete(em.listeners, name)
}

func (em *Emitter) Emit(name string, event *events.Event) {
	list := append([]*entry(nil), em.listeners[name]...)
	for _, e := range list {
		if e.once {
			em.remove(name, e)
		}
		e.listener(event)
	}
}

func (em *Emitter) Listeners(name string) int {
	return len(em.listeners[name])
}
