package rawiter_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/imagebridge/pkg/rawiter"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestConsumingTerminals(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	s.Test("count", func(t *testcase.T) {
		n := t.Random.IntB(0, 50)
		var ns []int
		for i := 0; i < n; i++ {
			ns = append(ns, i)
		}
		h := handleOf(ns...)
		assert.Equal(t, uintptr(n), rawiter.Count(&h))
		assert.True(t, h.IsNull())
	})

	s.Test("last", func(t *testcase.T) {
		h := handleOf(3, 1, 2)
		assert.Equal(t, 2, value(rawiter.Last(&h)))
		e := rawiter.Empty()
		assert.Nil(t, rawiter.Last(&e))
	})

	s.Test("collect agrees with next", func(t *testcase.T) {
		a, b := handleOf(4, 5, 6), handleOf(4, 5, 6)
		var viaNext []int
		for v := a.Next(); v != nil; v = a.Next() {
			viaNext = append(viaNext, value(v))
		}
		rawiter.Destroy(&a)
		got := rawiter.Collect(&b)
		assert.Equal(t, viaNext, values(got))
		assert.Equal(t, uintptr(len(got)), b.Size)
	})

	s.Test("collect of an empty handle", func(t *testcase.T) {
		h := rawiter.Empty()
		assert.Empty(t, rawiter.Collect(&h))
		assert.Equal(t, uintptr(0), h.Size)
	})

	s.Test("fold", func(t *testcase.T) {
		h := handleOf(1, 2, 3, 4)
		sum := rawiter.Fold(&h, item(0), func(acc, it rawiter.Item) rawiter.Item {
			return item(value(acc) + value(it))
		})
		assert.Equal(t, 10, value(sum))
	})

	s.Test("fold of an empty handle is the initial value", func(t *testcase.T) {
		h := rawiter.Empty()
		assert.Equal(t, 42, value(rawiter.Fold(&h, item(42), nil2)))
	})

	s.Test("reduce", func(t *testcase.T) {
		h := handleOf(2, 3, 4)
		sum := rawiter.Reduce(&h, func(acc, it rawiter.Item) rawiter.Item {
			return item(value(acc) + value(it))
		})
		assert.Equal(t, 9, value(sum))
		e := rawiter.Empty()
		assert.Nil(t, rawiter.Reduce(&e, nil2))
	})

	s.Test("reduce carries a nil accumulator", func(t *testcase.T) {
		h := handleOf(1, 2, 3)
		var calls int
		out := rawiter.Reduce(&h, func(acc, it rawiter.Item) rawiter.Item {
			calls++
			return nil
		})
		assert.Nil(t, out)
		assert.Equal(t, 2, calls)
		assert.True(t, h.IsNull())
	})

	s.Test("for each", func(t *testcase.T) {
		var seen []int
		h := handleOf(7, 8)
		rawiter.ForEach(&h, func(it rawiter.Item) { seen = append(seen, value(it)) })
		assert.Equal(t, []int{7, 8}, seen)
		assert.True(t, h.IsNull())
	})

	s.Test("max keeps the last of equals and min the first", func(t *testcase.T) {
		h := handleOf(3, 9, 1, 9, 1)
		got := rawiter.Max(&h)
		assert.Equal(t, 9, value(got))
		assert.True(t, got == item(9))

		h = handleOf(3, 9, 1, 9, 1)
		assert.Equal(t, 1, value(rawiter.Min(&h)))

		e := rawiter.Empty()
		assert.Nil(t, rawiter.Max(&e))
	})

	s.Test("max by and min by use the comparator", func(t *testcase.T) {
		// reversed ordering
		rev := func(a, b rawiter.Item) rawiter.Ordering {
			switch {
			case value(a) > value(b):
				return rawiter.Less
			case value(a) < value(b):
				return rawiter.Greater
			}
			return rawiter.Equal
		}
		h := handleOf(3, 9, 1, 5)
		assert.Equal(t, 1, value(rawiter.MaxBy(&h, rev)))
		h = handleOf(3, 9, 1, 5)
		assert.Equal(t, 9, value(rawiter.MinBy(&h, rev)))
	})

	s.Test("seq ranges over the remaining items and releases the handle", func(t *testcase.T) {
		var stopped bool
		src := rawiter.FromSeq(func(yield func(rawiter.Item) bool) {
			defer func() { stopped = true }()
			for _, n := range []int{1, 2, 3} {
				if !yield(item(n)) {
					return
				}
			}
		})
		var got []int
		for it := range rawiter.Seq(&src) {
			got = append(got, value(it))
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{1, 2}, got)
		assert.True(t, src.IsNull())
		assert.True(t, stopped)
	})
}

func nil2(rawiter.Item, rawiter.Item) rawiter.Item { return nil }

func TestBorrowingTerminals(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	subject := testcase.Let(s, func(t *testcase.T) *rawiter.Handle {
		h := handleOf(1, 2, 3, 4, 5)
		return &h
	})

	s.Test("nth consumes up to the item and leaves the rest", func(t *testcase.T) {
		h := subject.Get(t)
		assert.Equal(t, 2, value(rawiter.Nth(h, 1)))
		assert.Equal(t, 3, value(h.Next()))
		assert.Nil(t, rawiter.Nth(h, 5))
		rawiter.Destroy(h)
	})

	s.Test("all stops at the first rejection", func(t *testcase.T) {
		h := subject.Get(t)
		assert.False(t, rawiter.All(h, func(it rawiter.Item) bool { return value(it) < 3 }))
		assert.Equal(t, 4, value(h.Next()))
		assert.True(t, rawiter.All(h, func(rawiter.Item) bool { return true }))
		rawiter.Destroy(h)
	})

	s.Test("all of an empty handle is true and any is false", func(t *testcase.T) {
		e := rawiter.Empty()
		assert.True(t, rawiter.All(&e, func(rawiter.Item) bool { return false }))
		assert.False(t, rawiter.Any(&e, func(rawiter.Item) bool { return true }))
		rawiter.Destroy(&e)
	})

	s.Test("any stops at the first match", func(t *testcase.T) {
		h := subject.Get(t)
		assert.True(t, rawiter.Any(h, isEven))
		assert.Equal(t, 3, value(h.Next()))
		rawiter.Destroy(h)
	})

	s.Test("find", func(t *testcase.T) {
		h := subject.Get(t)
		assert.Equal(t, 4, value(rawiter.Find(h, func(it rawiter.Item) bool { return value(it) > 3 })))
		assert.Nil(t, rawiter.Find(h, func(it rawiter.Item) bool { return value(it) > 10 }))
		rawiter.Destroy(h)
	})

	s.Test("find map returns the first mapped item", func(t *testcase.T) {
		h := subject.Get(t)
		got := rawiter.FindMap(h, func(it rawiter.Item) rawiter.Item {
			if value(it) == 3 {
				return item(30)
			}
			return nil
		})
		assert.Equal(t, 30, value(got))
		rawiter.Destroy(h)
	})

	s.Test("position", func(t *testcase.T) {
		h := subject.Get(t)
		i, ok := rawiter.Position(h, func(it rawiter.Item) bool { return value(it) == 3 })
		assert.True(t, ok)
		assert.Equal(t, uintptr(2), i)
		_, ok = rawiter.Position(h, func(it rawiter.Item) bool { return value(it) == 1 })
		assert.False(t, ok)
		rawiter.Destroy(h)
	})
}
