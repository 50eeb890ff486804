package slogx

import (
	"fmt"
	"log/slog"
)

const (
	// KeyLoggerName is the key for the name of the component that logs.
	KeyLoggerName = "logger"
	// KeyEventKind is the key for the kind of the event a record is about.
	KeyEventKind = "event_kind"
	// KeyListenerID is the key for the id of a registered listener.
	KeyListenerID = "listener_id"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
//
// Parameters:
//   - err: The error to be converted into a slog.Attr.
//
// Returns:
//   - slog.Attr: An attribute with the key "error" and the error's message as the value.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer creates a slog.Attr with the provided key and the string form of
// value. Enumerations such as failure policies and log levels are logged
// through it so records carry their readable names instead of numbers.
//
// Parameters:
//   - key: The key for the attribute.
//   - value: An object that implements the fmt.Stringer interface.
//
// Returns:
//   - slog.Attr: An attribute containing the key and value.String().
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// LoggerName creates a slog.Attr naming the component a logger belongs to,
// such as "appevents.dispatcher". The attribute key is KeyLoggerName.
//
// Parameters:
//   - name: The name of the logger.
//
// Returns:
//   - slog.Attr: An attribute containing the logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Kind creates a slog.Attr for an event kind under KeyEventKind. Any
// string-based kind type is accepted, so callers don't convert appevents.Kind.
//
// Parameters:
//   - kind: The event kind.
//
// Returns:
//   - slog.Attr: An attribute with the key KeyEventKind and the kind as the value.
func Kind[K ~string](kind K) slog.Attr {
	return slog.String(KeyEventKind, string(kind))
}

// ListenerID creates a slog.Attr for the id of a registered listener.
//
// Parameters:
//   - id: The listener id, as returned by Listener.ID.
//
// Returns:
//   - slog.Attr: An attribute with the key KeyListenerID and the id as the value.
func ListenerID(id string) slog.Attr {
	return slog.String(KeyListenerID, id)
}
