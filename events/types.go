package events

import (
	"fmt"
	"time"

	"github.com/casualjim/appevents"
	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	KindProcessStarted    appevents.Kind = "process.started"
	KindProcessStopped    appevents.Kind = "process.stopped"
	KindMessageSent       appevents.Kind = "message.sent"
	KindHelloWorldShouted appevents.Kind = "hello_world.shouted"
)

// HelloWorldMessage is the text carried by every HelloWorldShouted.
const HelloWorldMessage = "Hello, you event driven world, you!"

var (
	processStartedJSON    = []byte(`{"kind":"process.started"}`)
	processStoppedJSON    = []byte(`{"kind":"process.stopped"}`)
	messageSentJSON       = []byte(`{"kind":"message.sent"}`)
	helloWorldShoutedJSON = []byte(`{"kind":"hello_world.shouted"}`)
)

// Encode marshals any event of this package to its JSON form.
func Encode(evt appevents.Event) ([]byte, error) {
	switch evt.(type) {
	case *ProcessStarted, *ProcessStopped, *MessageSent, *HelloWorldShouted:
		return json.Marshal(evt)
	default:
		return nil, fmt.Errorf("unknown event type: %T", evt)
	}
}

// Decode unmarshals a JSON event produced by Encode.
func Decode(data []byte) (appevents.Event, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json: %s", data)
	}

	kind := gjson.GetBytes(data, "kind")
	if !kind.Exists() {
		return nil, fmt.Errorf("missing required field 'kind'")
	}

	var evt interface {
		appevents.Event
		json.Unmarshaler
	}
	switch appevents.Kind(kind.String()) {
	case KindProcessStarted:
		evt = &ProcessStarted{}
	case KindProcessStopped:
		evt = &ProcessStopped{}
	case KindMessageSent:
		evt = &MessageSent{}
	case KindHelloWorldShouted:
		evt = &HelloWorldShouted{}
	default:
		return nil, fmt.Errorf("unknown event kind: %q", kind.String())
	}

	if err := evt.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return evt, nil
}

// ProcessStarted is published once the main process has wired its controllers.
type ProcessStarted struct {
	processID uuid.UUID
	startedAt strfmt.DateTime
}

func NewProcessStarted(processID uuid.UUID, startedAt time.Time) *ProcessStarted {
	return &ProcessStarted{
		processID: processID,
		startedAt: strfmt.DateTime(startedAt),
	}
}

func (*ProcessStarted) EventKind() appevents.Kind { return KindProcessStarted }

func (e *ProcessStarted) ProcessID() uuid.UUID { return e.processID }

func (e *ProcessStarted) StartedAt() time.Time { return time.Time(e.startedAt) }

// MarshalJSON implements custom JSON marshaling for ProcessStarted
func (e *ProcessStarted) MarshalJSON() ([]byte, error) {
	result := processStartedJSON

	var err error
	result, err = sjson.SetBytes(result, "process_id", e.processID.String())
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(result, "started_at", e.startedAt.String())
}

// UnmarshalJSON implements custom JSON unmarshaling for ProcessStarted
func (e *ProcessStarted) UnmarshalJSON(data []byte) error {
	if err := checkKind(data, KindProcessStarted); err != nil {
		return err
	}

	id, err := requiredUUID(data, "process_id")
	if err != nil {
		return err
	}
	at, err := requiredDateTime(data, "started_at")
	if err != nil {
		return err
	}

	e.processID = id
	e.startedAt = at
	return nil
}

// ProcessStopped is published when the main process begins shutting down.
type ProcessStopped struct {
	processID uuid.UUID
	stoppedAt strfmt.DateTime
	reason    string
}

func NewProcessStopped(processID uuid.UUID, stoppedAt time.Time, reason string) *ProcessStopped {
	return &ProcessStopped{
		processID: processID,
		stoppedAt: strfmt.DateTime(stoppedAt),
		reason:    reason,
	}
}

func (*ProcessStopped) EventKind() appevents.Kind { return KindProcessStopped }

func (e *ProcessStopped) ProcessID() uuid.UUID { return e.processID }

func (e *ProcessStopped) StoppedAt() time.Time { return time.Time(e.stoppedAt) }

func (e *ProcessStopped) Reason() string { return e.reason }

// MarshalJSON implements custom JSON marshaling for ProcessStopped
func (e *ProcessStopped) MarshalJSON() ([]byte, error) {
	result := processStoppedJSON

	var err error
	result, err = sjson.SetBytes(result, "process_id", e.processID.String())
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "stopped_at", e.stoppedAt.String())
	if err != nil {
		return nil, err
	}
	if e.reason != "" {
		result, err = sjson.SetBytes(result, "reason", e.reason)
	}
	return result, err
}

// UnmarshalJSON implements custom JSON unmarshaling for ProcessStopped
func (e *ProcessStopped) UnmarshalJSON(data []byte) error {
	if err := checkKind(data, KindProcessStopped); err != nil {
		return err
	}

	id, err := requiredUUID(data, "process_id")
	if err != nil {
		return err
	}
	at, err := requiredDateTime(data, "stopped_at")
	if err != nil {
		return err
	}

	e.processID = id
	e.stoppedAt = at
	e.reason = gjson.GetBytes(data, "reason").String()
	return nil
}

// MessageSent carries one line of text from a sender. Messages with the same
// sender and text share a pool key.
type MessageSent struct {
	sender string
	text   string
	key    appevents.Key
}

func NewMessageSent(sender, text string) *MessageSent {
	return &MessageSent{
		sender: sender,
		text:   text,
		key:    MessageSentKey(sender, text),
	}
}

// MessageSentKey is the pool key of the MessageSent built from sender and text.
func MessageSentKey(sender, text string) appevents.Key {
	return appevents.ContentKey(KindMessageSent, sender, text)
}

func (*MessageSent) EventKind() appevents.Kind { return KindMessageSent }

func (e *MessageSent) PoolKey() appevents.Key { return e.key }

func (e *MessageSent) Sender() string { return e.sender }

func (e *MessageSent) Text() string { return e.text }

// MarshalJSON implements custom JSON marshaling for MessageSent
func (e *MessageSent) MarshalJSON() ([]byte, error) {
	result := messageSentJSON

	var err error
	if e.sender != "" {
		result, err = sjson.SetBytes(result, "sender", e.sender)
		if err != nil {
			return nil, err
		}
	}
	return sjson.SetBytes(result, "text", e.text)
}

// UnmarshalJSON implements custom JSON unmarshaling for MessageSent
func (e *MessageSent) UnmarshalJSON(data []byte) error {
	if err := checkKind(data, KindMessageSent); err != nil {
		return err
	}

	text := gjson.GetBytes(data, "text")
	if !text.Exists() {
		return fmt.Errorf("missing required field 'text'")
	}

	*e = *NewMessageSent(gjson.GetBytes(data, "sender").String(), text.String())
	return nil
}

// HelloWorldShouted is the canned greeting. All instances are equal, so a
// pool holds at most one.
type HelloWorldShouted struct {
	message string
	key     appevents.Key
}

func NewHelloWorldShouted() *HelloWorldShouted {
	return &HelloWorldShouted{
		message: HelloWorldMessage,
		key:     HelloWorldShoutedKey(),
	}
}

// HelloWorldShoutedKey is the pool key shared by every HelloWorldShouted.
func HelloWorldShoutedKey() appevents.Key {
	return appevents.ContentKey(KindHelloWorldShouted, HelloWorldMessage)
}

func (*HelloWorldShouted) EventKind() appevents.Kind { return KindHelloWorldShouted }

func (e *HelloWorldShouted) PoolKey() appevents.Key { return e.key }

func (e *HelloWorldShouted) Message() string { return e.message }

// MarshalJSON implements custom JSON marshaling for HelloWorldShouted
func (e *HelloWorldShouted) MarshalJSON() ([]byte, error) {
	return sjson.SetBytes(helloWorldShoutedJSON, "message", e.message)
}

// UnmarshalJSON implements custom JSON unmarshaling for HelloWorldShouted
func (e *HelloWorldShouted) UnmarshalJSON(data []byte) error {
	if err := checkKind(data, KindHelloWorldShouted); err != nil {
		return err
	}
	if msg := gjson.GetBytes(data, "message"); msg.Exists() && msg.String() != HelloWorldMessage {
		return fmt.Errorf("unexpected message %q", msg.String())
	}

	*e = *NewHelloWorldShouted()
	return nil
}

func checkKind(data []byte, want appevents.Kind) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}
	kind := gjson.GetBytes(data, "kind")
	if !kind.Exists() || appevents.Kind(kind.String()) != want {
		return fmt.Errorf("missing or invalid kind, expected '%s'", want)
	}
	return nil
}

func requiredUUID(data []byte, field string) (uuid.UUID, error) {
	v := gjson.GetBytes(data, field)
	if !v.Exists() {
		return uuid.Nil, fmt.Errorf("missing required field '%s'", field)
	}
	id, err := uuid.Parse(v.String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}

func requiredDateTime(data []byte, field string) (strfmt.DateTime, error) {
	v := gjson.GetBytes(data, field)
	if !v.Exists() {
		return strfmt.DateTime{}, fmt.Errorf("missing required field '%s'", field)
	}
	dt, err := strfmt.ParseDateTime(v.String())
	if err != nil {
		return strfmt.DateTime{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	return dt, nil
}
