package appevents

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEvent is returned when a nil event is dispatched.
	ErrNilEvent = errors.New("event is required")

	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("handler is required")

	// ErrNoKind is returned when a listener is registered for an event type
	// that declares no kind, such as an interface type.
	ErrNoKind = errors.New("event type declares no kind")

	// ErrDisposed is returned when a closed dispatcher is used.
	ErrDisposed = errors.New("dispatcher is disposed")

	// ErrHandlerPanic matches every *HandlerError.
	ErrHandlerPanic = errors.New("listener panicked")
)

// HandlerError reports a listener that panicked during Dispatch.
type HandlerError struct {
	// Kind is the kind of the event being delivered.
	Kind Kind

	// ListenerID is the id of the listener that panicked.
	ListenerID string

	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack at the time of the panic.
	Stack []byte
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("listener %s for %q panicked: %v", e.ListenerID, e.Kind, e.Value)
}

// Is makes errors.Is(err, ErrHandlerPanic) hold.
func (e *HandlerError) Is(target error) bool {
	return target == ErrHandlerPanic
}

// Unwrap returns the panic value when it was an error.
func (e *HandlerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
