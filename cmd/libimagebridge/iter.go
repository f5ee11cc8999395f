package main

/*
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"go.llib.dev/imagebridge/pkg/opaque"
	"go.llib.dev/imagebridge/pkg/rawiter"
)

func slotOf(s C.RawIterator) slot {
	return slot{id: uintptr(s.__s), size: uintptr(s.__size)}
}

func (s slot) raw() C.RawIterator {
	return C.RawIterator{__s: C.uintptr_t(s.id), __size: C.uintptr_t(s.size)}
}

func ref(s C.RawIterator) *rawiter.Handle { return slotOf(s).handle() }

func borrow(s *C.RawIterator) *rawiter.Handle {
	if s == nil {
		return &rawiter.Handle{}
	}
	return ref(*s)
}

// settle forgets a RawIterator whose Handle was moved out.
func settle(s *C.RawIterator) {
	if s == nil {
		return
	}
	sl := slotOf(*s)
	sl.settle()
	*s = sl.raw()
}

func settleValue(s C.RawIterator) { settle(&s) }

// move takes the Handle out of a RawIterator received by value.
func move(s C.RawIterator) rawiter.Handle {
	sl := slotOf(s)
	return sl.move()
}

func raw(h rawiter.Handle) C.RawIterator { return newSlot(h).raw() }

func mapFn(f C.map_fn) rawiter.MapFunc {
	if f == nil {
		return nil
	}
	return func(it rawiter.Item) rawiter.Item { return C.call_map(f, it) }
}

func predicateFn(f C.predicate_fn) rawiter.Predicate {
	if f == nil {
		return nil
	}
	return func(it rawiter.Item) bool { return bool(C.call_predicate(f, it)) }
}

func visitFn(f C.visit_fn) rawiter.VisitFunc {
	if f == nil {
		return nil
	}
	return func(it rawiter.Item) { C.call_visit(f, it) }
}

func foldFn(f C.fold_fn) rawiter.FoldFunc {
	if f == nil {
		return nil
	}
	return func(acc, it rawiter.Item) rawiter.Item { return C.call_fold(f, acc, it) }
}

func scanFn(f C.scan_fn) rawiter.ScanFunc {
	if f == nil {
		return nil
	}
	return func(state *rawiter.Item, it rawiter.Item) rawiter.Item {
		slot := *state
		out := C.call_scan(f, &slot, it)
		*state = slot
		return out
	}
}

func flatMapFn(f C.flat_map_fn) rawiter.FlatMapFunc {
	if f == nil {
		return nil
	}
	return func(it rawiter.Item) rawiter.Handle { return move(C.call_flat_map(f, it)) }
}

func compareFn(f C.compare_fn) rawiter.CompareFunc {
	if f == nil {
		return nil
	}
	return func(a, b rawiter.Item) rawiter.Ordering { return rawiter.Ordering(C.call_compare(f, a, b)) }
}

//export iter_next
func iter_next(s *C.RawIterator) unsafe.Pointer {
	return borrow(s).Next()
}

//export iter_destroy
func iter_destroy(s *C.RawIterator) {
	rawiter.Destroy(borrow(s))
	settle(s)
}

//export iter_size_hint
func iter_size_hint(s *C.RawIterator) C.SizeHint {
	lower, upper, bounded := rawiter.SizeHint(borrow(s))
	hint := C.SizeHint{lhs: C.uintptr_t(lower)}
	if bounded {
		hint.rhs = (*C.uintptr_t)(opaque.Box(C.uintptr_t(upper)))
	}
	return hint
}

//export iter_count
func iter_count(s *C.RawIterator) C.uintptr_t {
	out := C.uintptr_t(rawiter.Count(borrow(s)))
	settle(s)
	return out
}

//export iter_last
func iter_last(s *C.RawIterator) unsafe.Pointer {
	out := rawiter.Last(borrow(s))
	settle(s)
	return out
}

//export iter_nth
func iter_nth(s *C.RawIterator, n C.uintptr_t) unsafe.Pointer {
	return rawiter.Nth(borrow(s), uintptr(n))
}

//export iter_step_by
func iter_step_by(s *C.RawIterator, step C.uintptr_t) C.RawIterator {
	out := raw(rawiter.StepBy(borrow(s), uintptr(step)))
	settle(s)
	return out
}

//export iter_chain
func iter_chain(s *C.RawIterator, other C.RawIterator) C.RawIterator {
	out := raw(rawiter.Chain(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_zip
func iter_zip(s *C.RawIterator, other C.RawIterator) C.RawIterator {
	out := raw(rawiter.Zip(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_map
func iter_map(s *C.RawIterator, f C.map_fn) C.RawIterator {
	out := raw(rawiter.Map(borrow(s), mapFn(f)))
	settle(s)
	return out
}

//export iter_for_each
func iter_for_each(s *C.RawIterator, f C.visit_fn) {
	rawiter.ForEach(borrow(s), visitFn(f))
	settle(s)
}

//export iter_filter
func iter_filter(s *C.RawIterator, predicate C.predicate_fn) C.RawIterator {
	out := raw(rawiter.Filter(borrow(s), predicateFn(predicate)))
	settle(s)
	return out
}

//export iter_filter_map
func iter_filter_map(s *C.RawIterator, f C.map_fn) C.RawIterator {
	out := raw(rawiter.FilterMap(borrow(s), mapFn(f)))
	settle(s)
	return out
}

//export iter_enumerate
func iter_enumerate(s *C.RawIterator) C.RawIterator {
	out := raw(rawiter.Enumerate(borrow(s)))
	settle(s)
	return out
}

//export iter_peekable
func iter_peekable(s *C.RawIterator) C.RawIterator {
	out := raw(rawiter.Peekable(borrow(s)))
	settle(s)
	return out
}

//export iter_peek
func iter_peek(s *C.RawIterator) unsafe.Pointer {
	return rawiter.Peek(borrow(s))
}

//export iter_skip_while
func iter_skip_while(s *C.RawIterator, predicate C.predicate_fn) C.RawIterator {
	out := raw(rawiter.SkipWhile(borrow(s), predicateFn(predicate)))
	settle(s)
	return out
}

//export iter_take_while
func iter_take_while(s *C.RawIterator, predicate C.predicate_fn) C.RawIterator {
	out := raw(rawiter.TakeWhile(borrow(s), predicateFn(predicate)))
	settle(s)
	return out
}

//export iter_map_while
func iter_map_while(s *C.RawIterator, f C.map_fn) C.RawIterator {
	out := raw(rawiter.MapWhile(borrow(s), mapFn(f)))
	settle(s)
	return out
}

//export iter_skip
func iter_skip(s *C.RawIterator, n C.uintptr_t) C.RawIterator {
	out := raw(rawiter.Skip(borrow(s), uintptr(n)))
	settle(s)
	return out
}

//export iter_take
func iter_take(s *C.RawIterator, n C.uintptr_t) C.RawIterator {
	out := raw(rawiter.Take(borrow(s), uintptr(n)))
	settle(s)
	return out
}

//export iter_scan
func iter_scan(s *C.RawIterator, initialState unsafe.Pointer, f C.scan_fn) C.RawIterator {
	out := raw(rawiter.Scan(borrow(s), initialState, scanFn(f)))
	settle(s)
	return out
}

//export iter_flat_map
func iter_flat_map(s *C.RawIterator, f C.flat_map_fn) C.RawIterator {
	out := raw(rawiter.FlatMap(borrow(s), flatMapFn(f)))
	settle(s)
	return out
}

//export iter_fuse
func iter_fuse(s *C.RawIterator) C.RawIterator {
	out := raw(rawiter.Fuse(borrow(s)))
	settle(s)
	return out
}

//export iter_inspect
func iter_inspect(s *C.RawIterator, f C.visit_fn) C.RawIterator {
	out := raw(rawiter.Inspect(borrow(s), visitFn(f)))
	settle(s)
	return out
}

//export iter_by_ref
func iter_by_ref(s *C.RawIterator) C.RawIterator {
	return raw(rawiter.ByRef(borrow(s)))
}

// iter_collect returns a malloc allocated array of the remaining items, or NULL when there were none.
// The item count is written to size and to s.__size.
//
//export iter_collect
func iter_collect(s *C.RawIterator, size *C.uintptr_t) *unsafe.Pointer {
	var sl slot
	if s != nil {
		sl = slotOf(*s)
	}
	items := sl.collect()
	if s != nil {
		*s = sl.raw()
	}
	if size != nil {
		*size = C.uintptr_t(len(items))
	}
	return (*unsafe.Pointer)(cArray(items))
}

//export iter_fold
func iter_fold(s *C.RawIterator, init unsafe.Pointer, f C.fold_fn) unsafe.Pointer {
	out := rawiter.Fold(borrow(s), init, foldFn(f))
	settle(s)
	return out
}

//export iter_reduce
func iter_reduce(s *C.RawIterator, f C.fold_fn) unsafe.Pointer {
	out := rawiter.Reduce(borrow(s), foldFn(f))
	settle(s)
	return out
}

//export iter_all
func iter_all(s *C.RawIterator, f C.predicate_fn) C.bool {
	return C.bool(rawiter.All(borrow(s), predicateFn(f)))
}

//export iter_any
func iter_any(s *C.RawIterator, f C.predicate_fn) C.bool {
	return C.bool(rawiter.Any(borrow(s), predicateFn(f)))
}

//export iter_find
func iter_find(s *C.RawIterator, predicate C.predicate_fn) unsafe.Pointer {
	return rawiter.Find(borrow(s), predicateFn(predicate))
}

//export iter_find_map
func iter_find_map(s *C.RawIterator, f C.map_fn) unsafe.Pointer {
	return rawiter.FindMap(borrow(s), mapFn(f))
}

// iter_position returns a pointer to the index, or NULL when no item matched.
// The result is released with iter_item_free.
//
//export iter_position
func iter_position(s *C.RawIterator, predicate C.predicate_fn) *C.uintptr_t {
	index, ok := rawiter.Position(borrow(s), predicateFn(predicate))
	if !ok {
		return nil
	}
	return (*C.uintptr_t)(opaque.Box(C.uintptr_t(index)))
}

//export iter_max
func iter_max(s *C.RawIterator) unsafe.Pointer {
	out := rawiter.Max(borrow(s))
	settle(s)
	return out
}

//export iter_min
func iter_min(s *C.RawIterator) unsafe.Pointer {
	out := rawiter.Min(borrow(s))
	settle(s)
	return out
}

//export iter_max_by
func iter_max_by(s *C.RawIterator, f C.compare_fn) unsafe.Pointer {
	out := rawiter.MaxBy(borrow(s), compareFn(f))
	settle(s)
	return out
}

//export iter_min_by
func iter_min_by(s *C.RawIterator, f C.compare_fn) unsafe.Pointer {
	out := rawiter.MinBy(borrow(s), compareFn(f))
	settle(s)
	return out
}

//export iter_cmp
func iter_cmp(s *C.RawIterator, other C.RawIterator) C.Ordering {
	out := C.Ordering(rawiter.Cmp(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_cmp_by
func iter_cmp_by(s *C.RawIterator, other C.RawIterator, f C.compare_fn) C.Ordering {
	out := C.Ordering(rawiter.CmpBy(borrow(s), ref(other), compareFn(f)))
	settle(s)
	settleValue(other)
	return out
}

// iter_partial_cmp returns a pointer to the ordering, or NULL when the sequences are not comparable.
// The result is released with iter_item_free.
//
//export iter_partial_cmp
func iter_partial_cmp(s *C.RawIterator, other C.RawIterator) *C.Ordering {
	o, ok := rawiter.PartialCmp(borrow(s), ref(other))
	settle(s)
	settleValue(other)
	if !ok {
		return nil
	}
	return (*C.Ordering)(opaque.Box(C.Ordering(o)))
}

//export iter_eq
func iter_eq(s *C.RawIterator, other C.RawIterator) C.bool {
	out := C.bool(rawiter.Eq(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_ne
func iter_ne(s *C.RawIterator, other C.RawIterator) C.bool {
	out := C.bool(rawiter.Ne(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_lt
func iter_lt(s *C.RawIterator, other C.RawIterator) C.bool {
	out := C.bool(rawiter.Lt(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_le
func iter_le(s *C.RawIterator, other C.RawIterator) C.bool {
	out := C.bool(rawiter.Le(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_gt
func iter_gt(s *C.RawIterator, other C.RawIterator) C.bool {
	out := C.bool(rawiter.Gt(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}

//export iter_ge
func iter_ge(s *C.RawIterator, other C.RawIterator) C.bool {
	out := C.bool(rawiter.Ge(borrow(s), ref(other)))
	settle(s)
	settleValue(other)
	return out
}
