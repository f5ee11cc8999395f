package rawiter

import (
	"go.llib.dev/imagebridge/pkg/thinkit"
)

type (
	// MapFunc transforms one item into another.
	// Depending on the combinator, a nil result is a violation (Map), a skip (FilterMap) or the end (MapWhile).
	MapFunc func(Item) Item
	// VisitFunc observes an item without changing it.
	VisitFunc func(Item)
	// ScanFunc receives the running state by pointer, so it can replace it.
	// A nil result ends the sequence.
	ScanFunc func(state *Item, item Item) Item
)

type mapIter struct {
	inner thinkit.Object
	fn    MapFunc
}

func (i *mapIter) Next() Item {
	v := i.inner.Next()
	if v == nil {
		return nil
	}
	out := i.fn(v)
	if out == nil {
		violation("map", ErrNilItem)
	}
	return out
}

func (i *mapIter) Drop() { i.inner.Drop() }

// Map transforms every item with fn.
// fn must always return an item; use FilterMap or MapWhile when absence is expected.
func Map(h *Handle, fn MapFunc) Handle {
	if fn == nil {
		violation("map", ErrNilFunc)
	}
	return From(mapIter{inner: h.take("map"), fn: fn})
}

type filterMap struct {
	inner thinkit.Object
	fn    MapFunc
}

func (i *filterMap) Next() Item {
	for {
		v := i.inner.Next()
		if v == nil {
			return nil
		}
		if out := i.fn(v); out != nil {
			return out
		}
	}
}

func (i *filterMap) Drop() { i.inner.Drop() }

// FilterMap transforms every item with fn and skips the ones where fn returns nil.
func FilterMap(h *Handle, fn MapFunc) Handle {
	if fn == nil {
		violation("filter_map", ErrNilFunc)
	}
	return From(filterMap{inner: h.take("filter_map"), fn: fn})
}

type mapWhile struct {
	inner thinkit.Object
	fn    MapFunc
	done  bool
}

func (i *mapWhile) Next() Item {
	if i.done {
		return nil
	}
	v := i.inner.Next()
	if v == nil {
		i.done = true
		return nil
	}
	out := i.fn(v)
	if out == nil {
		i.done = true
	}
	return out
}

func (i *mapWhile) Drop() { i.inner.Drop() }

// MapWhile transforms items with fn until fn returns nil, which ends the whole sequence.
func MapWhile(h *Handle, fn MapFunc) Handle {
	if fn == nil {
		violation("map_while", ErrNilFunc)
	}
	return From(mapWhile{inner: h.take("map_while"), fn: fn})
}

type scan struct {
	inner thinkit.Object
	state Item
	fn    ScanFunc
	done  bool
}

func (i *scan) Next() Item {
	if i.done {
		return nil
	}
	v := i.inner.Next()
	if v == nil {
		i.done = true
		return nil
	}
	out := i.fn(&i.state, v)
	if out == nil {
		i.done = true
	}
	return out
}

func (i *scan) Drop() { i.inner.Drop() }

// Scan threads a mutable state through fn, yielding what fn returns until it returns nil.
func Scan(h *Handle, initial Item, fn ScanFunc) Handle {
	if fn == nil {
		violation("scan", ErrNilFunc)
	}
	return From(scan{inner: h.take("scan"), state: initial, fn: fn})
}

type inspect struct {
	inner thinkit.Object
	fn    VisitFunc
}

func (i *inspect) Next() Item {
	v := i.inner.Next()
	if v != nil {
		i.fn(v)
	}
	return v
}

func (i *inspect) Drop() { i.inner.Drop() }

// Inspect calls fn with every item as it passes through.
func Inspect(h *Handle, fn VisitFunc) Handle {
	if fn == nil {
		violation("inspect", ErrNilFunc)
	}
	return From(inspect{inner: h.take("inspect"), fn: fn})
}
