package appevents

import (
	"reflect"

	"github.com/casualjim/appevents/pkg/eventkey"
)

// Kind identifies the declared type of an event. Listeners are registered and
// events are routed by kind, so every Go event type must report one constant,
// non-empty kind that no other event type reuses.
type Kind string

func (k Kind) String() string {
	return string(k)
}

// Event is the marker capability of application events.
//
// EventKind is evaluated on the zero value of the event type when a listener
// is registered, so it must not depend on field values. Declare it on the
// value receiver for value events and on the pointer receiver for pointer
// events:
//
//	type Ping struct{}
//
//	func (Ping) EventKind() appevents.Kind { return "ping" }
//
//	type MessageSent struct{ text string }
//
//	func (*MessageSent) EventKind() appevents.Kind { return "message.sent" }
type Event interface {
	EventKind() Kind
}

// Key is the lookup key of a pooled event.
type Key uint64

// Poolable is an event that carries a deterministic pool key. Implementations
// compute the key once, at construction, with ContentKey over their kind and
// field values; two events of the same kind with equal fields have equal keys.
type Poolable interface {
	Event
	PoolKey() Key
}

// KindOf returns the kind declared by event type T. It returns an empty kind
// when T is an interface type, since only concrete types declare a kind.
//
// For a pointer type *E the kind is read from a new zero E, so EventKind may
// be declared on either receiver of E.
func KindOf[T Event]() Kind {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Interface:
		return ""
	case reflect.Pointer:
		evt, ok := reflect.New(t.Elem()).Interface().(T)
		if !ok {
			return ""
		}
		return evt.EventKind()
	}

	var zero T
	return zero.EventKind()
}

// ContentKey derives a pool key from a kind and field values. Pass the
// event's field values themselves, not the event: it panics when a field
// can't be encoded faithfully, such as a channel, a func or a struct with
// unexported fields (see eventkey.ErrOpaqueField).
func ContentKey(kind Kind, fields ...any) Key {
	return Key(eventkey.MustOf(string(kind), fields...))
}

// KindKey is the pool key of a kind alone. Type-keyed pools file every event
// under it, and it equals the ContentKey of an event that has no fields.
func KindKey(kind Kind) Key {
	return Key(eventkey.ForKind(string(kind)))
}
