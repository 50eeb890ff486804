package appevents

import (
	"runtime/debug"

	"github.com/casualjim/appevents/pkg/uuidx"
	"github.com/google/uuid"
)

// Handler receives events of one declared type.
type Handler[T Event] func(T)

// Listener identifies one registration made with AddListener. Registering the
// same handler twice yields two listeners, and each one is removed separately.
// The zero Listener identifies nothing.
type Listener struct {
	id   uuid.UUID
	kind Kind
}

// ID returns the listener's unique id.
func (l Listener) ID() string {
	return l.id.String()
}

// Kind returns the event kind the listener is registered for.
func (l Listener) Kind() Kind {
	return l.kind
}

// IsZero reports whether l is the zero Listener.
func (l Listener) IsZero() bool {
	return l.id == uuid.Nil
}

// listener is a registered handler with its type parameter erased.
type listener struct {
	id     uuid.UUID
	invoke func(Event) bool
}

func newListener[T Event](handler Handler[T]) *listener {
	return &listener{
		id: uuidx.New(),
		invoke: func(evt Event) bool {
			typed, ok := evt.(T)
			if !ok {
				return false
			}
			handler(typed)
			return true
		},
	}
}

// call delivers evt, turning a panic into a *HandlerError.
func (l *listener) call(kind Kind, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerError{
				Kind:       kind,
				ListenerID: l.id.String(),
				Value:      r,
				Stack:      debug.Stack(),
			}
		}
	}()
	l.invoke(evt)
	return nil
}
