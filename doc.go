/*
Package appevents provides a typed, in-process event dispatcher and an event
pool for applications whose components should talk to each other without
holding references to each other.

Components publish immutable events and subscribe to the event types they care
about. Delivery is synchronous: Dispatch runs every listener registered for the
event's exact type, in registration order, before it returns.

  - Events: any type implementing Event, which declares a constant Kind.
  - Dispatcher: the registration table plus Dispatch and Close.
  - Pool: a cache holding at most one event per Key, for events that would
    otherwise be rebuilt on every dispatch.

# Basic Usage

	d := appevents.NewDispatcher()
	defer d.Close()

	l, err := appevents.AddListener(d, func(evt *events.MessageSent) {
		fmt.Println(evt.Sender(), "says", evt.Text())
	})
	if err != nil {
		return err
	}
	defer d.RemoveListener(l)

	if err := appevents.Dispatch(d, events.NewMessageSent("alice", "hi")); err != nil {
		return err
	}

# Listeners

AddListener returns a Listener handle. Registering the same function twice
creates two listeners and the function runs twice per event; each handle is
removed on its own with RemoveListener. A kind with no listeners left is
dropped from the table, so a later registration starts afresh.

# Failures

Dispatching a nil event returns ErrNilEvent, and using a dispatcher after
Close returns ErrDisposed. A listener that panics is reported as a
*HandlerError. With the default FailFast policy the remaining listeners are
skipped; with Isolate they still run and all failures come back joined.

Looking something up that isn't there is not an error: RemoveListener,
TryGet and TryRemove report it with a boolean.

# Pool

A Pool keys events by their content (PoolKey, see ContentKey) by default, or
by their kind when created with WithKeyStrategy(KeyByKind). It never
overwrites an entry; owners look up first and build and add on a miss.

# Thread Safety

Dispatcher and Pool are safe for concurrent use. Listeners run on the
goroutine that called Dispatch and must synchronize their own state.
*/
package appevents
