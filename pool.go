package appevents

import (
	"fmt"

	"github.com/alphadose/haxmap"
	"github.com/casualjim/appevents/pkg/reflectx"
	"github.com/fogfish/opts"
)

// Pool caches at most one event per key so immutable events can be reused
// instead of rebuilt on every dispatch. Entries are never overwritten: callers
// look an event up first and build and add it only on a miss.
//
//	evt, ok := appevents.TryGet[*events.MessageSent](pool, key)
//	if !ok {
//		evt = events.NewMessageSent(sender, text)
//		pool.TryAdd(evt)
//	}
//
// A Pool is safe for concurrent use.
type Pool struct {
	strategy KeyStrategy
	slots    *haxmap.Map[uint64, Poolable]
}

// NewPool creates an empty pool, keyed by content unless WithKeyStrategy says
// otherwise. It panics on invalid options.
func NewPool(options ...opts.Option[Pool]) *Pool {
	p := &Pool{
		strategy: KeyByContent,
		slots:    haxmap.New[uint64, Poolable](),
	}
	if err := opts.Apply(p, options); err != nil {
		panic(err)
	}
	if !p.strategy.valid() {
		panic(fmt.Errorf("invalid key strategy: %s", p.strategy))
	}
	return p
}

// Strategy returns the pool's keying strategy.
func (p *Pool) Strategy() KeyStrategy {
	return p.strategy
}

// KeyOf returns the key evt is filed under in this pool.
func (p *Pool) KeyOf(evt Poolable) Key {
	if p.strategy == KeyByKind {
		return KindKey(evt.EventKind())
	}
	return evt.PoolKey()
}

// TryAdd caches evt under its key. It returns false, leaving the pool
// untouched, when evt is nil or the key is already taken.
func (p *Pool) TryAdd(evt Poolable) bool {
	if reflectx.IsNil(evt) {
		return false
	}
	_, loaded := p.slots.GetOrSet(uint64(p.KeyOf(evt)), evt)
	return !loaded
}

// TryGet returns the event cached under key. It reports false when the key is
// empty or the cached event is not a T. A hit returns the instance that was
// added, not a copy.
func TryGet[T Poolable](p *Pool, key Key) (T, bool) {
	var zero T

	cached, ok := p.slots.Get(uint64(key))
	if !ok {
		return zero, false
	}
	evt, ok := cached.(T)
	if !ok {
		return zero, false
	}
	return evt, true
}

// TryGetKind looks up the event filed under the kind of T, which is where a
// KeyByKind pool keeps it.
func TryGetKind[T Poolable](p *Pool) (T, bool) {
	kind := KindOf[T]()
	if kind == "" {
		var zero T
		return zero, false
	}
	return TryGet[T](p, KindKey(kind))
}

// TryRemove evicts the event cached under key and reports whether there was one.
func (p *Pool) TryRemove(key Key) bool {
	_, ok := p.slots.GetAndDel(uint64(key))
	return ok
}

// Clear evicts every cached event.
func (p *Pool) Clear() {
	keys := make([]uint64, 0, p.slots.Len())
	p.slots.ForEach(func(k uint64, _ Poolable) bool {
		keys = append(keys, k)
		return true
	})
	if len(keys) > 0 {
		p.slots.Del(keys...)
	}
}

// Len returns the number of cached events.
func (p *Pool) Len() int {
	return int(p.slots.Len())
}
