package main

/*
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"go.llib.dev/imagebridge/pkg/opaque"
)

// mallocAllocator keeps bridge produced items outside of the Go heap,
// so C callers may hold on to them after the call returned.
type mallocAllocator struct{}

var _ opaque.Allocator = mallocAllocator{}

func (mallocAllocator) Alloc(size uintptr) unsafe.Pointer {
	return C.calloc(1, C.size_t(size))
}

func (mallocAllocator) Free(p unsafe.Pointer) {
	C.free(p)
}

//export iter_item_free
func iter_item_free(it unsafe.Pointer) {
	opaque.Release(it)
}

//export imagebridge_free
func imagebridge_free(p unsafe.Pointer) {
	C.free(p)
}

// cArray copies vs into a malloc allocated array.
func cArray[T any](vs []T) unsafe.Pointer {
	if len(vs) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero) * uintptr(len(vs))
	p := C.malloc(C.size_t(size))
	copy(unsafe.Slice((*T)(p), len(vs)), vs)
	return p
}
