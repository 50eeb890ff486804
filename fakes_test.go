package appevents

type ping struct{}

func (ping) EventKind() Kind { return "test.ping" }

type pong struct {
	n int
}

func (pong) EventKind() Kind { return "test.pong" }

// impostor reuses ping's kind from another Go type.
type impostor struct{}

func (impostor) EventKind() Kind { return "test.ping" }

type simpleEvent1 struct {
	key Key
}

func newSimpleEvent1() *simpleEvent1 {
	e := &simpleEvent1{}
	e.key = ContentKey(e.EventKind())
	return e
}

func (*simpleEvent1) EventKind() Kind { return "test.simple1" }

func (e *simpleEvent1) PoolKey() Key { return e.key }

type simpleEvent2 struct {
	key Key
}

func newSimpleEvent2() *simpleEvent2 {
	e := &simpleEvent2{}
	e.key = ContentKey(e.EventKind())
	return e
}

func (*simpleEvent2) EventKind() Kind { return "test.simple2" }

func (e *simpleEvent2) PoolKey() Key { return e.key }

type msg struct {
	text string
	key  Key
}

func newMsg(text string) *msg {
	m := &msg{text: text}
	m.key = ContentKey(m.EventKind(), text)
	return m
}

func (*msg) EventKind() Kind { return "test.msg" }

func (m *msg) PoolKey() Key { return m.key }
