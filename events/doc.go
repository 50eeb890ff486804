// Package events defines the application events published through the
// appevents dispatcher by the console shell, together with their JSON form.
//
// Event catalogue:
//   - ProcessStarted: the main process is up and controllers are wired
//   - ProcessStopped: the main process is shutting down, with a reason
//   - MessageSent: a sender published a line of text (poolable, keyed by content)
//   - HelloWorldShouted: the canned greeting (poolable, one instance per process)
//
// Events are immutable: fields are set by the constructors and exposed
// through accessors. Poolable events compute their pool key at construction.
//
// Every event marshals to a JSON object carrying a "kind" discriminator:
//
//	{"kind":"message.sent","sender":"alice","text":"hi"}
//
// Decode reads any of them back:
//
//	evt, err := events.Decode(line)
//	if err != nil {
//	    return err
//	}
//	switch e := evt.(type) {
//	case *events.MessageSent:
//	    fmt.Println(e.Sender(), e.Text())
//	}
package events
