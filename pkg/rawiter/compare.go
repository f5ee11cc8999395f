package rawiter

import (
	"go.llib.dev/imagebridge/pkg/thinkit"
)

// Ordering is the result of a comparison.
// The values match the C enum of the exported API.
type Ordering uint8

const (
	Less Ordering = iota
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// CompareFunc orders two items.
type CompareFunc func(a, b Item) Ordering

func compareAddress(a, b Item) Ordering {
	switch x, y := uintptr(a), uintptr(b); {
	case x < y:
		return Less
	case x > y:
		return Greater
	default:
		return Equal
	}
}

// lexicographic walks both objects in lockstep until they differ or one ends.
func lexicographic(a, b thinkit.Object, cmp CompareFunc) Ordering {
	for {
		x := a.Next()
		y := b.Next()
		switch {
		case x == nil && y == nil:
			return Equal
		case x == nil:
			return Less
		case y == nil:
			return Greater
		}
		if o := cmp(x, y); o != Equal {
			return o
		}
	}
}

func compare(op string, a, b *Handle, cmp CompareFunc) Ordering {
	distinct(op, a, b)
	oa, ob := a.take(op), b.take(op)
	defer oa.Drop()
	defer ob.Drop()
	return lexicographic(oa, ob, cmp)
}

// Cmp consumes both handles and compares them lexicographically by item address.
// When one is a prefix of the other, the shorter one is Less.
func Cmp(a, b *Handle) Ordering {
	return compare("cmp", a, b, compareAddress)
}

// CmpBy is Cmp with a caller supplied item ordering.
func CmpBy(a, b *Handle, cmp CompareFunc) Ordering {
	if cmp == nil {
		violation("cmp_by", ErrNilFunc)
	}
	return compare("cmp_by", a, b, cmp)
}

// PartialCmp is Cmp for callers that expect a partial order.
// Item addresses are totally ordered, so the result is always defined.
func PartialCmp(a, b *Handle) (Ordering, bool) {
	return compare("partial_cmp", a, b, compareAddress), true
}

func Eq(a, b *Handle) bool { return compare("eq", a, b, compareAddress) == Equal }

func Ne(a, b *Handle) bool { return compare("ne", a, b, compareAddress) != Equal }

func Lt(a, b *Handle) bool { return compare("lt", a, b, compareAddress) == Less }

func Le(a, b *Handle) bool { return compare("le", a, b, compareAddress) != Greater }

func Gt(a, b *Handle) bool { return compare("gt", a, b, compareAddress) == Greater }

func Ge(a, b *Handle) bool { return compare("ge", a, b, compareAddress) != Less }
