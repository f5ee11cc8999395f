package rawiter

import (
	"iter"
)

// FoldFunc combines the accumulator with the next item.
type FoldFunc func(acc, item Item) Item

// drain consumes h, calls fn for every item until fn returns false, then releases the object.
func drain(op string, h *Handle, fn func(Item) bool) {
	o := h.take(op)
	defer o.Drop()
	for v := o.Next(); v != nil; v = o.Next() {
		if !fn(v) {
			return
		}
	}
}

// scanBorrowed advances h without taking ownership, until fn returns false.
func scanBorrowed(op string, h *Handle, fn func(Item) bool) {
	o := h.object(op)
	for v := o.Next(); v != nil; v = o.Next() {
		if !fn(v) {
			return
		}
	}
}

// SizeHint reports the bounds of the remaining length.
// Erased iterators do not carry their cardinality, so the answer is always the widest: zero and unbounded.
func SizeHint(h *Handle) (lower uintptr, upper uintptr, bounded bool) {
	h.object("size_hint")
	return 0, 0, false
}

// Count consumes h and returns how many items it yielded.
func Count(h *Handle) uintptr {
	var n uintptr
	drain("count", h, func(Item) bool { n++; return true })
	return n
}

// Last consumes h and returns its final item, or nil when it was empty.
func Last(h *Handle) Item {
	var last Item
	drain("last", h, func(v Item) bool { last = v; return true })
	return last
}

// Nth skips n items and returns the one after them. h stays usable.
func Nth(h *Handle, n uintptr) Item {
	var out Item
	scanBorrowed("nth", h, func(v Item) bool {
		if n == 0 {
			out = v
			return false
		}
		n--
		return true
	})
	return out
}

// Collect consumes h into a slice and writes its length into h.Size.
func Collect(h *Handle) []Item {
	var items []Item
	drain("collect", h, func(v Item) bool { items = append(items, v); return true })
	h.Size = uintptr(len(items))
	return items
}

// Fold consumes h, threading the accumulator through fn.
func Fold(h *Handle, init Item, fn FoldFunc) Item {
	if fn == nil {
		violation("fold", ErrNilFunc)
	}
	acc := init
	drain("fold", h, func(v Item) bool { acc = fn(acc, v); return true })
	return acc
}

// Reduce is Fold with the first item as the initial accumulator.
// It returns nil when h is empty. A nil accumulator returned by fn is carried on like any other.
func Reduce(h *Handle, fn FoldFunc) Item {
	if fn == nil {
		violation("reduce", ErrNilFunc)
	}
	var (
		acc   Item
		first = true
	)
	drain("reduce", h, func(v Item) bool {
		if first {
			acc, first = v, false
		} else {
			acc = fn(acc, v)
		}
		return true
	})
	return acc
}

// ForEach consumes h and calls fn with every item.
func ForEach(h *Handle, fn VisitFunc) {
	if fn == nil {
		violation("for_each", ErrNilFunc)
	}
	drain("for_each", h, func(v Item) bool { fn(v); return true })
}

// All reports whether pred accepts every item. It stops at the first rejection; h stays usable.
func All(h *Handle, pred Predicate) bool {
	if pred == nil {
		violation("all", ErrNilFunc)
	}
	ok := true
	scanBorrowed("all", h, func(v Item) bool {
		ok = pred(v)
		return ok
	})
	return ok
}

// Any reports whether pred accepts at least one item. It stops at the first match; h stays usable.
func Any(h *Handle, pred Predicate) bool {
	if pred == nil {
		violation("any", ErrNilFunc)
	}
	var found bool
	scanBorrowed("any", h, func(v Item) bool {
		found = pred(v)
		return !found
	})
	return found
}

// Find returns the first item pred accepts, or nil.
func Find(h *Handle, pred Predicate) Item {
	if pred == nil {
		violation("find", ErrNilFunc)
	}
	var out Item
	scanBorrowed("find", h, func(v Item) bool {
		if pred(v) {
			out = v
			return false
		}
		return true
	})
	return out
}

// FindMap returns the first non nil result of fn, or nil.
func FindMap(h *Handle, fn MapFunc) Item {
	if fn == nil {
		violation("find_map", ErrNilFunc)
	}
	var out Item
	scanBorrowed("find_map", h, func(v Item) bool {
		out = fn(v)
		return out == nil
	})
	return out
}

// Position returns the index of the first item pred accepts.
func Position(h *Handle, pred Predicate) (uintptr, bool) {
	if pred == nil {
		violation("position", ErrNilFunc)
	}
	var (
		index uintptr
		found bool
	)
	scanBorrowed("position", h, func(v Item) bool {
		if pred(v) {
			found = true
			return false
		}
		index++
		return true
	})
	return index, found
}

// Max returns the item with the highest address. Of equal items, the last one wins.
func Max(h *Handle) Item {
	var best Item
	drain("max", h, func(v Item) bool {
		if best == nil || uintptr(best) <= uintptr(v) {
			best = v
		}
		return true
	})
	return best
}

// Min returns the item with the lowest address. Of equal items, the first one wins.
func Min(h *Handle) Item {
	var best Item
	drain("min", h, func(v Item) bool {
		if best == nil || uintptr(v) < uintptr(best) {
			best = v
		}
		return true
	})
	return best
}

// MaxBy returns the greatest item according to cmp. Of equal items, the last one wins.
func MaxBy(h *Handle, cmp CompareFunc) Item {
	if cmp == nil {
		violation("max_by", ErrNilFunc)
	}
	var best Item
	drain("max_by", h, func(v Item) bool {
		if best == nil || cmp(best, v) != Greater {
			best = v
		}
		return true
	})
	return best
}

// MinBy returns the least item according to cmp. Of equal items, the first one wins.
func MinBy(h *Handle, cmp CompareFunc) Item {
	if cmp == nil {
		violation("min_by", ErrNilFunc)
	}
	var best Item
	drain("min_by", h, func(v Item) bool {
		if best == nil || cmp(best, v) == Greater {
			best = v
		}
		return true
	})
	return best
}

// Seq moves h into a single-use range-over-func sequence.
// The iterator is released when the range loop ends, even on break.
func Seq(h *Handle) iter.Seq[Item] {
	o := h.take("seq")
	var used bool
	return func(yield func(Item) bool) {
		if used {
			return
		}
		used = true
		defer o.Drop()
		for v := o.Next(); v != nil; v = o.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
