package events

type Handler func(*Event)

// Surface is anything input events can be subscribed on: an element or the document.
type Surface interface {
	Listen(kind Kind, handler Handler) (cancel func())
}

type listener struct {
	handler Handler
}

// Target is an in-memory Surface. Dispatched events bubble from a target
// through its parents until a listener stops propagation.
type Target struct {
	parent    *Target
	listeners map[Kind][]*listener
}

func NewTarget(parent *Target) *Target {
	return &Target{parent: parent, listeners: map[Kind][]*listener{}}
}

func (t *Target) Parent() *Target {
	return t.parent
}

func (t *Target) Listen(kind Kind, handler Handler) func() {
	l := &listener{handler: handler}
	t.listeners[kind] = append(t.listeners[kind], l)
	return func() { t.remove(kind, l) }
}

func (t *Target) remove(kind Kind, l *listener) {
	list := t.listeners[kind]
	for i := range list {
		if list[i] == l {
			t.listeners[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (t *Target) Listeners(kind Kind) int {
	return len(t.listeners[kind])
}

func (t *Target) Dispatch(event *Event) {
	for target := t; target != nil; target = target.parent {
		list := append([]*listener(nil), target.listeners[event.Kind]...)
		for _, l := range list {
			l.handler(event)
		}
		if event.stopped {
			return
		}
	}
}
