// Package eventkey derives deterministic 64-bit lookup keys from an event kind
// and its field values.
//
// Each field contributes its Go type name and its canonical JSON encoding
// (map keys sorted) to an xxhash digest seeded with the kind. Equal kinds with
// equal field values always produce equal keys, within and across processes.
// Values of different types never share an encoding: []byte("hi") and the
// string "aGk=" produce different keys, as do 1 and 1.0. Pointers are
// followed, so a struct and a pointer to an equal struct give the same key.
//
// A kind without fields hashes to the same key as ForKind, so a type-keyed pool
// is the special case of a content-keyed one where every event has no fields.
//
// Fields whose JSON form would hide part of their value are rejected with
// ErrOpaqueField: structs with unexported fields, at any depth, unless the
// type marshals itself (json.Marshaler or encoding.TextMarshaler, as
// time.Time does).
package eventkey

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
)

const (
	kindSep  = 0x1e
	typeSep  = 0x1d
	fieldSep = 0x1f
)

// ErrOpaqueField is returned for field values whose JSON encoding does not
// capture all of their state.
var ErrOpaqueField = errors.New("field has state that JSON cannot encode")

var (
	jsonMarshaler = reflect.TypeFor[json.Marshaler]()
	textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()
)

// Of computes the key for kind and fields. It fails when a field cannot be
// encoded as JSON (channels, funcs, cyclic values) or is opaque to it.
func Of(kind string, fields ...any) (uint64, error) {
	d := xxhash.New()
	_, _ = d.WriteString(kind)
	_, _ = d.Write([]byte{kindSep})

	for i, field := range fields {
		t := reflect.TypeOf(field)
		if opaque(t, map[reflect.Type]bool{}) {
			return 0, fmt.Errorf("eventkey: field %d of %q (%s): %w", i, kind, t, ErrOpaqueField)
		}

		b, err := json.Marshal(field)
		if err != nil {
			return 0, fmt.Errorf("eventkey: field %d of %q: %w", i, kind, err)
		}
		_, _ = d.WriteString(typeName(t))
		_, _ = d.Write([]byte{typeSep})
		_, _ = d.Write(b)
		_, _ = d.Write([]byte{fieldSep})
	}
	return d.Sum64(), nil
}

// MustOf is like Of but panics when a field can't be encoded. Meant for event
// constructors whose fields are plain data.
func MustOf(kind string, fields ...any) uint64 {
	k, err := Of(kind, fields...)
	if err != nil {
		panic(err)
	}
	return k
}

// ForKind is the key of a kind carrying no field values.
func ForKind(kind string) uint64 {
	return MustOf(kind)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

func marshalsItself(t reflect.Type) bool {
	return t.Implements(jsonMarshaler) || t.Implements(textMarshaler) ||
		(t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(jsonMarshaler)) ||
		(t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(textMarshaler))
}

// opaque reports whether values of type t lose state when encoded to JSON.
// Interface-typed fields are checked by their dynamic value only at the top level.
func opaque(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == nil || seen[t] {
		return false
	}
	seen[t] = true

	if marshalsItself(t) {
		return false
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return opaque(t.Elem(), seen)
	case reflect.Map:
		return opaque(t.Key(), seen) || opaque(t.Elem(), seen)
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if f.Tag.Get("json") == "-" {
				continue
			}
			if !f.IsExported() && !(f.Anonymous && f.Type.Kind() == reflect.Struct) {
				return true
			}
			if opaque(f.Type, seen) {
				return true
			}
		}
	}
	return false
}
