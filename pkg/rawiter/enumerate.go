package rawiter

import (
	"go.llib.dev/imagebridge/pkg/opaque"
	"go.llib.dev/imagebridge/pkg/thinkit"
)

// Enumerated is the item type produced by Enumerate.
type Enumerated struct {
	Index uintptr
	Item  Item
}

type enumerate struct {
	inner thinkit.Object
	count uintptr
}

func (i *enumerate) Next() Item {
	v := i.inner.Next()
	if v == nil {
		return nil
	}
	e := Enumerated{Index: i.count, Item: v}
	i.count++
	return opaque.Box(e)
}

func (i *enumerate) Drop() { i.inner.Drop() }

// Enumerate yields boxed Enumerated items with a zero based index.
func Enumerate(h *Handle) Handle {
	return From(enumerate{inner: h.take("enumerate")})
}
