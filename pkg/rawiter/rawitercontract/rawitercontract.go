package rawitercontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/imagebridge/pkg/rawiter"
)

// Handle checks the behaviour every Handle producer must have.
// mk must produce equivalent handles on every call within the same test.
func Handle(mk func(testing.TB) rawiter.Handle) contract.Contract {
	s := testcase.NewSpec(nil)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	subject := testcase.Let(s, func(t *testcase.T) *rawiter.Handle {
		h := mk(t)
		t.Defer(func() {
			if !h.IsNull() {
				rawiter.Destroy(&h)
			}
		})
		return &h
	})

	s.Then("exhaustion is idempotent", func(t *testcase.T) {
		h := subject.Get(t)
		for h.Next() != nil {
		}
		for i := 0; i < 3; i++ {
			assert.Nil(t, h.Next())
		}
	})

	s.Then("collect reports the number of items next would yield", func(t *testcase.T) {
		var n uintptr
		h := subject.Get(t)
		for h.Next() != nil {
			n++
		}
		oth := mk(t)
		items := rawiter.Collect(&oth)
		assert.Equal(t, n, oth.Size)
		assert.Equal(t, int(n), len(items))
	})

	s.Then("count agrees with collect", func(t *testcase.T) {
		oth := mk(t)
		assert.Equal(t, rawiter.Count(subject.Get(t)), uintptr(len(rawiter.Collect(&oth))))
	})

	s.Then("items are never nil before exhaustion", func(t *testcase.T) {
		for _, it := range rawiter.Collect(subject.Get(t)) {
			assert.NotNil(t, it)
		}
	})

	s.Then("a borrowed view yields the same items", func(t *testcase.T) {
		h := subject.Get(t)
		ref := rawiter.ByRef(h)
		viaRef := rawiter.Collect(&ref)
		oth := mk(t)
		assert.Equal(t, len(rawiter.Collect(&oth)), len(viaRef))
		assert.False(t, h.IsNull())
		assert.Nil(t, h.Next())
	})

	s.Then("a consumed handle is null and rejects further use", func(t *testcase.T) {
		h := subject.Get(t)
		rawiter.Count(h)
		assert.True(t, h.IsNull())
		out := assert.Panic(t, func() { h.Next() })
		assert.Equal[any](t, rawiter.ErrNullHandle, out)
	})

	return s.AsSuite("rawiter.Handle")
}
