package rawiter

import (
	"go.llib.dev/imagebridge/pkg/thinkit"
)

type stepBy struct {
	inner   thinkit.Object
	step    uintptr
	started bool
}

func (i *stepBy) Next() Item {
	if !i.started {
		i.started = true
		return i.inner.Next()
	}
	for n := uintptr(1); n < i.step; n++ {
		if i.inner.Next() == nil {
			return nil
		}
	}
	return i.inner.Next()
}

func (i *stepBy) Drop() { i.inner.Drop() }

// StepBy yields the first item, then every step-th item after it.
func StepBy(h *Handle, step uintptr) Handle {
	if step == 0 {
		violation("step_by", ErrZeroStep)
	}
	return From(stepBy{inner: h.take("step_by"), step: step})
}

type skip struct {
	inner thinkit.Object
	n     uintptr
}

func (i *skip) Next() Item {
	for ; 0 < i.n; i.n-- {
		if i.inner.Next() == nil {
			i.n = 0
			return nil
		}
	}
	return i.inner.Next()
}

func (i *skip) Drop() { i.inner.Drop() }

// Skip drops the first n items.
func Skip(h *Handle, n uintptr) Handle {
	return From(skip{inner: h.take("skip"), n: n})
}

type take struct {
	inner thinkit.Object
	n     uintptr
}

func (i *take) Next() Item {
	if i.n == 0 {
		return nil
	}
	i.n--
	v := i.inner.Next()
	if v == nil {
		i.n = 0
	}
	return v
}

func (i *take) Drop() { i.inner.Drop() }

// Take yields at most n items, and never advances the source past them.
func Take(h *Handle, n uintptr) Handle {
	return From(take{inner: h.take("take"), n: n})
}

type fuse struct {
	inner thinkit.Object
	done  bool
}

func (i *fuse) Next() Item {
	if i.done {
		return nil
	}
	v := i.inner.Next()
	if v == nil {
		i.done = true
	}
	return v
}

func (i *fuse) Drop() { i.inner.Drop() }

// Fuse guarantees that once the source reported exhaustion, it is not advanced again.
func Fuse(h *Handle) Handle {
	return From(fuse{inner: h.take("fuse")})
}
