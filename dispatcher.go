package appevents

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/casualjim/appevents/internal/registry"
	"github.com/casualjim/appevents/pkg/reflectx"
	"github.com/casualjim/appevents/pkg/slogx"
	"github.com/fogfish/opts"
)

// Dispatcher routes each dispatched event to the listeners registered for its
// exact kind, synchronously and in registration order.
//
// A Dispatcher is safe for concurrent use. Dispatch works on a snapshot of the
// listener sequence taken when it starts, so listeners may add or remove
// listeners, or dispatch further events, while they run. A listener removed
// during a dispatch still sees the event being delivered.
//
// Close must be called when the owner shuts down; afterwards Dispatch and
// AddListener fail with ErrDisposed.
type Dispatcher struct {
	logger *slog.Logger
	policy FailurePolicy

	mu     sync.RWMutex
	closed bool
	table  *registry.Table[Kind, *listener]
}

// NewDispatcher creates an empty dispatcher. It panics on invalid options.
func NewDispatcher(options ...opts.Option[Dispatcher]) *Dispatcher {
	d := &Dispatcher{
		policy: FailFast,
		table:  registry.New[Kind, *listener](),
	}
	if err := opts.Apply(d, options); err != nil {
		panic(err)
	}
	if !d.policy.valid() {
		panic(fmt.Errorf("invalid failure policy: %s", d.policy))
	}
	if d.logger == nil {
		d.logger = slog.Default().With(slogx.LoggerName("appevents.dispatcher"))
	}
	return d
}

// AddListener registers handler for events of type T and returns the listener
// that identifies this registration. Handlers already registered for T keep
// running first.
func AddListener[T Event](d *Dispatcher, handler Handler[T]) (Listener, error) {
	if handler == nil {
		return Listener{}, ErrNilHandler
	}
	kind := KindOf[T]()
	if kind == "" {
		return Listener{}, ErrNoKind
	}

	l := newListener(handler)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return Listener{}, ErrDisposed
	}

	n := d.table.Append(kind, l)
	d.logger.Debug("listener added",
		slogx.Kind(kind),
		slogx.ListenerID(l.id.String()),
		slog.Int("listeners", n),
	)
	return Listener{id: l.id, kind: kind}, nil
}

// RemoveListener unregisters l. It returns false, and changes nothing, when l
// is not registered, including after Close.
func (d *Dispatcher) RemoveListener(l Listener) bool {
	if l.IsZero() || !d.table.Has(l.kind) {
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	removed := d.table.Remove(l.kind, func(x *listener) bool { return x.id == l.id })
	if removed {
		d.logger.Debug("listener removed",
			slogx.Kind(l.kind),
			slogx.ListenerID(l.ID()),
			slog.Int("listeners", d.table.Count(l.kind)),
		)
	}
	return removed
}

// Dispatch delivers evt to every listener registered for its kind before
// returning. An event nobody listens to is dropped without error.
//
// A panicking listener is reported as a *HandlerError; whether the remaining
// listeners still run depends on the dispatcher's FailurePolicy.
func Dispatch[T Event](d *Dispatcher, evt T) error {
	if reflectx.IsNil(evt) {
		return ErrNilEvent
	}

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return ErrDisposed
	}
	kind := evt.EventKind()
	listeners := d.table.Snapshot(kind)
	d.mu.RUnlock()

	return d.deliver(kind, evt, listeners)
}

func (d *Dispatcher) deliver(kind Kind, evt Event, listeners []*listener) error {
	var errs []error
	for _, l := range listeners {
		if err := l.call(kind, evt); err != nil {
			if d.policy == FailFast {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close removes every listener and disposes the dispatcher. Calling it again
// has no effect.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	removed := d.table.Drain()
	d.closed = true
	d.logger.Debug("dispatcher disposed", slog.Int("listeners_removed", removed))
	return nil
}

// Disposed reports whether Close has been called.
func (d *Dispatcher) Disposed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.closed
}

// Kinds returns the kinds that currently have listeners, in the order they
// were first registered.
func (d *Dispatcher) Kinds() []Kind {
	return d.table.Keys()
}

// ListenerCount returns how many listeners are registered for kind.
func (d *Dispatcher) ListenerCount(kind Kind) int {
	return d.table.Count(kind)
}
