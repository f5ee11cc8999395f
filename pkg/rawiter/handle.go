package rawiter

import (
	"go.llib.dev/imagebridge/pkg/opaque"
	"go.llib.dev/imagebridge/pkg/thinkit"
)

type Item = opaque.Item

// Handle is the stable, fixed size representation of an erased iterator.
//
// Size is scratch space written by Collect; it carries no meaning otherwise.
// A Handle must never be copied as a second owner: pass it by pointer, and let operations move out of it.
// While a ByRef borrow of it is alive, a Handle can be advanced but not moved.
type Handle struct {
	s        thinkit.Object
	Size     uintptr
	borrowed bool
}

// From erases a concrete iterator into a Handle.
func From[A any, P interface {
	*A
	thinkit.Iterator
}](v A) Handle {
	return Handle{s: thinkit.New[A, P](v)}
}

var _ thinkit.Iterator = (*Handle)(nil)

func (h *Handle) IsNull() bool { return h == nil || h.s.IsNil() }

// Next advances the Handle and returns the next Item, or nil when exhausted.
func (h *Handle) Next() Item {
	return h.object("next").Next()
}

func (h *Handle) object(op string) thinkit.Object {
	if h.IsNull() {
		violation(op, ErrNullHandle)
	}
	return h.s
}

// take moves the object out, leaving h null.
func (h *Handle) take(op string) thinkit.Object {
	o := h.object(op)
	if h.borrowed {
		violation(op, ErrBorrowed)
	}
	h.s = thinkit.Object{}
	return o
}

// Move transfers the iterator out of h and leaves h null.
// A null h gives a null Handle.
func Move(h *Handle) Handle {
	if h.IsNull() {
		return Handle{}
	}
	if h.borrowed {
		violation("move", ErrBorrowed)
	}
	out := *h
	*h = Handle{}
	return out
}

// Destroy releases the iterator behind h and every iterator it owns.
func Destroy(h *Handle) {
	h.take("destroy").Drop()
}

func target(o thinkit.Object) (*Handle, bool) {
	r, ok := thinkit.Downcast[byRef](o)
	if !ok {
		return nil, false
	}
	return r.target, true
}

// distinct rejects pairs of handles that would advance the same underlying object.
// A borrowed operand is rejected as well: its borrower may sit anywhere inside the other one.
func distinct(op string, a, b *Handle) (thinkit.Object, thinkit.Object) {
	oa, ob := a.object(op), b.object(op)
	if a == b || oa.Same(ob) || a.borrowed || b.borrowed {
		violation(op, ErrSelfReference)
	}
	ta, aIsRef := target(oa)
	tb, bIsRef := target(ob)
	switch {
	case aIsRef && (ta == b || ta.s.Same(ob)):
		violation(op, ErrSelfReference)
	case bIsRef && (tb == a || tb.s.Same(oa)):
		violation(op, ErrSelfReference)
	case aIsRef && bIsRef && ta == tb:
		violation(op, ErrSelfReference)
	}
	return oa, ob
}
