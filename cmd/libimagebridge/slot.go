package main

import (
	"runtime/cgo"

	"go.llib.dev/imagebridge/pkg/rawiter"
)

// slot is the Go view of a RawIterator.
// id is the cgo.Handle of a heap allocated rawiter.Handle, or zero once the iterator was moved out.
type slot struct {
	id   uintptr
	size uintptr
}

func newSlot(h rawiter.Handle) slot {
	p := new(rawiter.Handle)
	*p = h
	return slot{id: uintptr(cgo.NewHandle(p)), size: h.Size}
}

// handle resolves the Go side Handle.
// A consumed or zeroed slot resolves to a fresh null Handle, which rawiter rejects.
func (s slot) handle() *rawiter.Handle {
	if s.id == 0 {
		return &rawiter.Handle{}
	}
	return cgo.Handle(s.id).Value().(*rawiter.Handle)
}

// settle forgets a slot whose Handle was moved out.
func (s *slot) settle() {
	if s.id == 0 {
		return
	}
	cgo.Handle(s.id).Delete()
	s.id = 0
}

// move takes the Handle out of the slot and settles it.
func (s *slot) move() rawiter.Handle {
	h := rawiter.Move(s.handle())
	s.settle()
	return h
}

// collect drains the slot and records the item count in size.
func (s *slot) collect() []rawiter.Item {
	h := s.handle()
	items := rawiter.Collect(h)
	s.settle()
	s.size = h.Size
	return items
}
