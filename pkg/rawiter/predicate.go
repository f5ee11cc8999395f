package rawiter

import (
	"go.llib.dev/imagebridge/pkg/thinkit"
)

type Predicate func(Item) bool

type filter struct {
	inner thinkit.Object
	pred  Predicate
}

func (i *filter) Next() Item {
	for {
		v := i.inner.Next()
		if v == nil || i.pred(v) {
			return v
		}
	}
}

func (i *filter) Drop() { i.inner.Drop() }

// Filter yields the items pred accepts.
func Filter(h *Handle, pred Predicate) Handle {
	if pred == nil {
		violation("filter", ErrNilFunc)
	}
	return From(filter{inner: h.take("filter"), pred: pred})
}

type skipWhile struct {
	inner    thinkit.Object
	pred     Predicate
	yielding bool
}

func (i *skipWhile) Next() Item {
	if i.yielding {
		return i.inner.Next()
	}
	for {
		v := i.inner.Next()
		if v == nil {
			return nil
		}
		if !i.pred(v) {
			i.yielding = true
			return v
		}
	}
}

func (i *skipWhile) Drop() { i.inner.Drop() }

// SkipWhile drops items while pred accepts them, then yields everything after.
func SkipWhile(h *Handle, pred Predicate) Handle {
	if pred == nil {
		violation("skip_while", ErrNilFunc)
	}
	return From(skipWhile{inner: h.take("skip_while"), pred: pred})
}

type takeWhile struct {
	inner thinkit.Object
	pred  Predicate
	done  bool
}

func (i *takeWhile) Next() Item {
	if i.done {
		return nil
	}
	v := i.inner.Next()
	if v == nil || !i.pred(v) {
		i.done = true
		return nil
	}
	return v
}

func (i *takeWhile) Drop() { i.inner.Drop() }

// TakeWhile yields items until pred rejects one. The rejected item is consumed.
func TakeWhile(h *Handle, pred Predicate) Handle {
	if pred == nil {
		violation("take_while", ErrNilFunc)
	}
	return From(takeWhile{inner: h.take("take_while"), pred: pred})
}
