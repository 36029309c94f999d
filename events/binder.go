package events

import (
	"errors"
	"fmt"
)

var ErrNoHandler = errors.New("no handler for event kind")

// HandlerTable maps event kinds to the receiver's handlers.
type HandlerTable map[Kind]Handler

// Check reports the first of kinds that has no handler in the table.
func (t HandlerTable) Check(kinds ...Kind) error {
	for _, kind := range kinds {
		if t[kind] == nil {
			return fmt.Errorf("%w: %s", ErrNoHandler, kind)
		}
	}
	return nil
}

// Binder subscribes handlers from a table on one surface and remembers
// the subscriptions so they can be removed together.
type Binder struct {
	surface Surface
	table   HandlerTable
	cancels []func()
}

func NewBinder(surface Surface, table HandlerTable) *Binder {
	return &Binder{surface: surface, table: table}
}

// Bind subscribes kind with its own handler.
func (b *Binder) Bind(kind Kind) error {
	return b.BindAs(kind, kind)
}

// BindAs subscribes kind with the handler registered for as,
// e.g. BindAs(MouseDown, TouchStart).
func (b *Binder) BindAs(kind, as Kind) error {
	handler := b.table[as]
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, as)
	}
	b.cancels = append(b.cancels, b.surface.Listen(kind, handler))
	return nil
}

func (b *Binder) Unbind() {
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = b.cancels[:0]
}

func (b *Binder) Bound() int {
	return len(b.cancels)
}
