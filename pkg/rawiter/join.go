package rawiter

import (
	"go.llib.dev/imagebridge/pkg/opaque"
	"go.llib.dev/imagebridge/pkg/thinkit"
)

type chain struct {
	a, b thinkit.Object
}

func (i *chain) Next() Item {
	if !i.a.IsNil() {
		if v := i.a.Next(); v != nil {
			return v
		}
		i.a.Drop()
		i.a = thinkit.Object{}
	}
	if i.b.IsNil() {
		return nil
	}
	return i.b.Next()
}

func (i *chain) Drop() {
	if !i.a.IsNil() {
		i.a.Drop()
	}
	if !i.b.IsNil() {
		i.b.Drop()
	}
}

// Chain yields every item of a, then every item of b.
// a is released as soon as it is exhausted.
func Chain(a, b *Handle) Handle {
	distinct("chain", a, b)
	return From(chain{a: a.take("chain"), b: b.take("chain")})
}

// Pair is the item type produced by Zip.
type Pair struct {
	A Item
	B Item
}

type zip struct {
	a, b thinkit.Object
	done bool
}

func (i *zip) Next() Item {
	if i.done {
		return nil
	}
	x := i.a.Next()
	if x == nil {
		i.done = true
		return nil
	}
	y := i.b.Next()
	if y == nil {
		i.done = true
		return nil
	}
	return opaque.Box(Pair{A: x, B: y})
}

func (i *zip) Drop() {
	i.a.Drop()
	i.b.Drop()
}

// Zip yields boxed Pair items until either side is exhausted.
func Zip(a, b *Handle) Handle {
	distinct("zip", a, b)
	return From(zip{a: a.take("zip"), b: b.take("zip")})
}

// FlatMapFunc maps an item into a whole sequence.
type FlatMapFunc func(Item) Handle

type flatMap struct {
	outer thinkit.Object
	inner thinkit.Object
	fn    FlatMapFunc
}

func (i *flatMap) Next() Item {
	for {
		if !i.inner.IsNil() {
			if v := i.inner.Next(); v != nil {
				return v
			}
			i.inner.Drop()
			i.inner = thinkit.Object{}
		}
		if i.outer.IsNil() {
			return nil
		}
		v := i.outer.Next()
		if v == nil {
			i.outer.Drop()
			i.outer = thinkit.Object{}
			return nil
		}
		h := i.fn(v)
		if h.IsNull() {
			continue
		}
		i.inner = h.take("flat_map")
	}
}

func (i *flatMap) Drop() {
	if !i.inner.IsNil() {
		i.inner.Drop()
	}
	if !i.outer.IsNil() {
		i.outer.Drop()
	}
}

// FlatMap yields the items of every sequence fn returns, one sequence after the other.
// A null Handle from fn counts as an empty sequence.
func FlatMap(h *Handle, fn FlatMapFunc) Handle {
	if fn == nil {
		violation("flat_map", ErrNilFunc)
	}
	return From(flatMap{outer: h.take("flat_map"), fn: fn})
}
