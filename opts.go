package appevents

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fogfish/opts"
)

// FailurePolicy decides what Dispatch does when a listener panics.
type FailurePolicy int

const (
	// FailFast stops delivery at the first failing listener and returns its
	// error. Listeners later in the sequence do not see the event.
	FailFast FailurePolicy = iota

	// Isolate keeps delivering to the remaining listeners and returns every
	// failure joined into one error.
	Isolate
)

func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case Isolate:
		return "isolate"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

func (p FailurePolicy) valid() bool {
	return p == FailFast || p == Isolate
}

// ParseFailurePolicy parses the String form of a policy, case-insensitively.
// "failfast" is accepted as well as "fail-fast".
//
// Parameters:
//   - s: The policy name, usually read from configuration.
//
// Returns:
//   - FailurePolicy: The parsed policy, FailFast on error.
//   - error: An error naming s when it is not a known policy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail-fast", "failfast":
		return FailFast, nil
	case "isolate":
		return Isolate, nil
	}
	return FailFast, fmt.Errorf("unknown failure policy %q", s)
}

// KeyStrategy decides how a Pool keys the events it caches. A pool uses one
// strategy for its whole life.
type KeyStrategy int

const (
	// KeyByContent files each event under its PoolKey, so events of one kind
	// with different payloads get separate slots.
	KeyByContent KeyStrategy = iota

	// KeyByKind files each event under the KindKey of its kind: one slot per
	// event type regardless of payload.
	KeyByKind
)

func (s KeyStrategy) String() string {
	switch s {
	case KeyByContent:
		return "content"
	case KeyByKind:
		return "kind"
	default:
		return fmt.Sprintf("KeyStrategy(%d)", int(s))
	}
}

func (s KeyStrategy) valid() bool {
	return s == KeyByContent || s == KeyByKind
}

var (
	// WithLogger sets the logger the dispatcher writes its debug records to.
	// Without it the dispatcher logs through slog.Default, tagged with the
	// logger name "appevents.dispatcher".
	//
	// Parameters:
	//   - logger: A *slog.Logger receiving the dispatcher's records.
	//
	// Returns:
	//   - An opts.Option[Dispatcher] for NewDispatcher.
	WithLogger = opts.ForName[Dispatcher, *slog.Logger]("logger")

	// WithFailurePolicy sets how the dispatcher reacts to panicking listeners.
	// The default is FailFast. NewDispatcher panics on a policy other than
	// FailFast or Isolate.
	//
	// Parameters:
	//   - policy: The FailurePolicy to apply on every Dispatch.
	//
	// Returns:
	//   - An opts.Option[Dispatcher] for NewDispatcher.
	WithFailurePolicy = opts.ForName[Dispatcher, FailurePolicy]("policy")

	// WithKeyStrategy picks the keying strategy of a pool: KeyByContent
	// (default) or KeyByKind. NewPool panics on any other value.
	//
	// Parameters:
	//   - strategy: The KeyStrategy the pool uses for its whole life.
	//
	// Returns:
	//   - An opts.Option[Pool] for NewPool.
	WithKeyStrategy = opts.ForName[Pool, KeyStrategy]("strategy")
)
