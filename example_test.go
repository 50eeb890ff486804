package appevents_test

import (
	"errors"
	"fmt"

	"github.com/casualjim/appevents"
)

type greeted struct {
	name string
	key  appevents.Key
}

func newGreeted(name string) *greeted {
	g := &greeted{name: name}
	g.key = appevents.ContentKey(g.EventKind(), name)
	return g
}

func (*greeted) EventKind() appevents.Kind { return "example.greeted" }

func (g *greeted) PoolKey() appevents.Key { return g.key }

func Example() {
	d := appevents.NewDispatcher()

	l, err := appevents.AddListener(d, func(evt *greeted) {
		fmt.Println("hello,", evt.name)
	})
	if err != nil {
		panic(err)
	}

	_ = appevents.Dispatch(d, newGreeted("world"))
	d.RemoveListener(l)
	_ = appevents.Dispatch(d, newGreeted("nobody"))

	_ = d.Close()
	err = appevents.Dispatch(d, newGreeted("again"))
	fmt.Println(errors.Is(err, appevents.ErrDisposed))
	// Output:
	// hello, world
	// true
}

func ExamplePool() {
	pool := appevents.NewPool()

	acquire := func(name string) *greeted {
		if g, ok := appevents.TryGet[*greeted](pool, appevents.ContentKey("example.greeted", name)); ok {
			return g
		}
		g := newGreeted(name)
		pool.TryAdd(g)
		return g
	}

	a := acquire("world")
	b := acquire("world")
	fmt.Println(a == b, pool.Len())
	// Output: true 1
}
