// Package opaque holds the untyped item representation that flows through erased iterator handles.
//
// An Item is a plain pointer. The bridge never looks behind it,
// it only moves it from the producer to the consumer.
// A nil Item means "no item" and is never a valid element.
//
// Items that the bridge creates itself (pairs, enumerations, pixels) are boxed with Box,
// and every such Item is paired with Release.
// By default storage comes from the Go heap and Release is a no-op.
// When the items must outlive the Go side, for example when they are handed over to a C caller,
// an Allocator can be installed with Use.
package opaque

import (
	"sync/atomic"
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrNilItem errorkit.Error = "opaque item is nil"

type Item = unsafe.Pointer

// Allocator provides raw storage for boxed items.
// Storage from an Allocator is not scanned by the garbage collector,
// so boxed values that go through it must not hold Go pointers.
type Allocator interface {
	Alloc(size uintptr) unsafe.Pointer
	Free(p unsafe.Pointer)
}

type holder struct{ Allocator Allocator }

var allocator atomic.Pointer[holder]

// Use installs the Allocator for every later Box and Release call.
// The returned function restores the previous one.
func Use(a Allocator) (restore func()) {
	prev := allocator.Swap(&holder{Allocator: a})
	return func() { allocator.Store(prev) }
}

func current() (Allocator, bool) {
	h := allocator.Load()
	if h == nil || h.Allocator == nil {
		return nil, false
	}
	return h.Allocator, true
}

// Box copies v into new storage and returns its address as an Item.
func Box[T any](v T) Item {
	a, ok := current()
	if !ok {
		p := new(T)
		*p = v
		return Item(p)
	}
	size := unsafe.Sizeof(v)
	if size == 0 {
		size = 1
	}
	p := a.Alloc(size)
	if p == nil {
		panic("opaque: allocation failed")
	}
	*(*T)(p) = v
	return Item(p)
}

// Ptr exposes an existing value as an Item without copying it.
func Ptr[T any](p *T) Item {
	return Item(p)
}

// Unbox reads the value of type T behind the Item.
func Unbox[T any](it Item) T {
	if it == nil {
		panic(ErrNilItem)
	}
	return *(*T)(it)
}

// As returns the typed pointer behind the Item.
func As[T any](it Item) *T {
	return (*T)(it)
}

// Release gives back the storage of an Item produced by Box.
// Releasing a nil Item is a no-op.
func Release(it Item) {
	if it == nil {
		return
	}
	if a, ok := current(); ok {
		a.Free(it)
	}
}
