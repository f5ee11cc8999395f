package rawiter

import (
	"go.llib.dev/imagebridge/pkg/thinkit"
)

type peekable struct {
	inner  thinkit.Object
	peeked Item
	cached bool
}

func (i *peekable) Next() Item {
	if i.cached {
		i.cached = false
		v := i.peeked
		i.peeked = nil
		return v
	}
	return i.inner.Next()
}

func (i *peekable) peek() Item {
	if !i.cached {
		i.peeked = i.inner.Next()
		i.cached = true
	}
	return i.peeked
}

func (i *peekable) Drop() { i.inner.Drop() }

// Peekable wraps h so that Peek can look at the next item without consuming it.
func Peekable(h *Handle) Handle {
	return From(peekable{inner: h.take("peekable")})
}

// Peek returns the item the next call to Next would return, or nil when exhausted.
// It only works on Handles created by Peekable.
func Peek(h *Handle) Item {
	p, ok := thinkit.Downcast[peekable](h.object("peek"))
	if !ok {
		violation("peek", ErrNotPeekable)
	}
	return p.peek()
}
