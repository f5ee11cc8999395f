package rawiter

import (
	"iter"
)

type sliceIter struct {
	items []Item
	index int
}

func (i *sliceIter) Next() Item {
	for i.index < len(i.items) {
		v := i.items[i.index]
		i.items[i.index] = nil
		i.index++
		if v != nil {
			return v
		}
	}
	return nil
}

// FromSlice yields the non nil items of the slice in order.
// The slice is owned by the Handle afterwards.
func FromSlice(items []Item) Handle {
	return From(sliceIter{items: items})
}

type emptyIter struct{}

func (emptyIter) Next() Item { return nil }

// Empty returns a valid Handle that has nothing to yield.
func Empty() Handle {
	return From(emptyIter{})
}

type seqIter struct {
	next func() (Item, bool)
	stop func()
	done bool
}

func (i *seqIter) Next() Item {
	if i.done {
		return nil
	}
	v, ok := i.next()
	if !ok || v == nil {
		i.finish()
		return nil
	}
	return v
}

func (i *seqIter) finish() {
	if i.done {
		return
	}
	i.done = true
	i.stop()
}

func (i *seqIter) Drop() { i.finish() }

// FromSeq adapts a range-over-func sequence.
// The sequence is pulled one item at a time and stopped when the Handle is exhausted or destroyed.
// A nil item ends the sequence.
//
// FromSeq is built on iter.Pull, so the sequence runs on a coroutine of its own.
// Every other Handle is advanced on the caller's goroutine; this one is the exception.
// A Handle from FromSeq that is never exhausted or destroyed leaks that coroutine.
func FromSeq(seq iter.Seq[Item]) Handle {
	next, stop := iter.Pull(seq)
	return From(seqIter{next: next, stop: stop})
}

type funcIter struct {
	next func() Item
	done bool
}

func (i *funcIter) Next() Item {
	if i.done {
		return nil
	}
	v := i.next()
	if v == nil {
		i.done = true
	}
	return v
}

// FromFunc builds a Handle from a pull function.
// The first nil result ends the sequence, and the function is not called again.
func FromFunc(next func() Item) Handle {
	if next == nil {
		violation("from_func", ErrNilFunc)
	}
	return From(funcIter{next: next})
}

type byRef struct {
	target *Handle
}

func (r *byRef) Next() Item { return r.target.object("by_ref").Next() }

func (r *byRef) Drop() { r.target.borrowed = false }

// ByRef borrows h: the returned Handle advances h, but destroying it leaves h intact.
// h must outlive the returned Handle, and cannot be moved or borrowed again until it is destroyed.
func ByRef(h *Handle) Handle {
	h.object("by_ref")
	if h.borrowed {
		violation("by_ref", ErrBorrowed)
	}
	h.borrowed = true
	return From(byRef{target: h})
}
