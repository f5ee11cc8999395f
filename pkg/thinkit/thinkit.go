// Package thinkit implements a single word dynamic object.
//
// A Go interface value is two words wide and its layout is owned by the runtime,
// so it cannot be handed across a foreign boundary as an opaque handle.
// An Object is a single pointer to a block that starts with a *Vtable,
// followed inline by the concrete iterator state.
// Every call goes through the Vtable, so the holder of an Object never needs to know the concrete type.
//
//	+----------+
//	| *Vtable  | ---> { Next, Drop }
//	+----------+
//	| value A  |
//	+----------+
//
// Vtables are built lazily, at most once per concrete type, and are read-only afterwards.
package thinkit

import (
	"context"
	"reflect"
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/synckit"
)

const (
	ErrNilObject    errorkit.Error = "thin object is nil"
	ErrUseAfterDrop errorkit.Error = "thin object used after it was dropped"
	ErrDoubleDrop   errorkit.Error = "thin object dropped twice"
)

// Iterator is the behaviour a concrete state must have to live behind a Vtable.
// Next returns nil once the sequence is exhausted, and keeps returning nil afterwards.
type Iterator interface {
	Next() unsafe.Pointer
}

// Dropper is implemented by states that own other resources, like nested Objects.
type Dropper interface {
	Drop()
}

// Vtable is the dispatch record shared by every Object of the same concrete type.
type Vtable struct {
	Next func(self unsafe.Pointer) unsafe.Pointer
	Drop func(self unsafe.Pointer)
}

type repr[A any] struct {
	vtable *Vtable
	value  A
}

type header struct {
	vtable *Vtable
}

// Object is a type erased iterator in a single machine word.
// The zero Object is nil.
type Object struct {
	ptr unsafe.Pointer
}

// New moves v into a fresh block behind the Vtable of A.
func New[A any, P interface {
	*A
	Iterator
}](v A) Object {
	r := &repr[A]{vtable: VtableOf[A, P](), value: v}
	return Object{ptr: unsafe.Pointer(r)}
}

// FromPointer reinterprets a raw pointer that was obtained with Object.Pointer.
func FromPointer(p unsafe.Pointer) Object {
	return Object{ptr: p}
}

func (o Object) Pointer() unsafe.Pointer { return o.ptr }

func (o Object) IsNil() bool { return o.ptr == nil }

// Same reports whether both Objects share the same allocation.
func (o Object) Same(oth Object) bool { return o.ptr != nil && o.ptr == oth.ptr }

func (o Object) header() *header {
	if o.ptr == nil {
		violation(ErrNilObject)
	}
	return (*header)(o.ptr)
}

func (o Object) Vtable() *Vtable { return o.header().vtable }

// Next advances the concrete state and returns the produced item, or nil when exhausted.
func (o Object) Next() unsafe.Pointer {
	h := o.header()
	return h.vtable.Next(o.ptr)
}

// Drop releases the concrete state, including every Object it owns.
// After Drop, the Object must not be used again.
func (o Object) Drop() {
	h := o.header()
	vt := h.vtable
	if vt == &dropped {
		violation(ErrDoubleDrop)
	}
	vt.Drop(o.ptr)
	h.vtable = &dropped
}

// Downcast gives access to the concrete state when the Object was built from A.
func Downcast[A any, P interface {
	*A
	Iterator
}](o Object) (*A, bool) {
	if o.ptr == nil {
		return nil, false
	}
	if o.Vtable() != VtableOf[A, P]() {
		return nil, false
	}
	return &(*repr[A])(o.ptr).value, true
}

var dropped = Vtable{
	Next: func(unsafe.Pointer) unsafe.Pointer {
		violation(ErrUseAfterDrop)
		return nil
	},
	Drop: func(unsafe.Pointer) {
		violation(ErrDoubleDrop)
	},
}

func violation(err errorkit.Error) {
	logger.Error(context.Background(), "thin object contract violation", logging.ErrField(err))
	panic(err)
}

var vtables synckit.Map[reflect.Type, *Vtable]

// VtableOf returns the Vtable of A, building it on first use.
func VtableOf[A any, P interface {
	*A
	Iterator
}]() *Vtable {
	return vtables.GetOrInit(reflect.TypeFor[A](), newVtable[A, P])
}

func newVtable[A any, P interface {
	*A
	Iterator
}]() *Vtable {
	return &Vtable{
		Next: func(self unsafe.Pointer) unsafe.Pointer {
			return P(&(*repr[A])(self).value).Next()
		},
		Drop: func(self unsafe.Pointer) {
			r := (*repr[A])(self)
			if d, ok := any(P(&r.value)).(Dropper); ok {
				d.Drop()
			}
			var zero A
			r.value = zero
		},
	}
}
