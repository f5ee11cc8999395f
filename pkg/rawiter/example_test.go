package rawiter_test

import (
	"go.llib.dev/imagebridge/pkg/opaque"
	"go.llib.dev/imagebridge/pkg/rawiter"
)

func ExampleMap() {
	nums := []int{1, 2, 3}
	src := rawiter.FromSlice([]rawiter.Item{opaque.Ptr(&nums[0]), opaque.Ptr(&nums[1]), opaque.Ptr(&nums[2])})

	doubled := rawiter.Map(&src, func(it rawiter.Item) rawiter.Item {
		return opaque.Box(opaque.Unbox[int](it) * 2)
	})
	// src is null now, doubled owns the pipeline

	for _, it := range rawiter.Collect(&doubled) {
		_ = opaque.Unbox[int](it) // 2, 4, 6
	}
}

func ExampleZip() {
	a := rawiter.FromSlice([]rawiter.Item{opaque.Box("a"), opaque.Box("b")})
	b := rawiter.FromSlice([]rawiter.Item{opaque.Box(1), opaque.Box(2), opaque.Box(3)})

	z := rawiter.Zip(&a, &b)
	for it := range rawiter.Seq(&z) {
		p := opaque.Unbox[rawiter.Pair](it)
		_ = opaque.Unbox[string](p.A)
		_ = opaque.Unbox[int](p.B)
		opaque.Release(it)
	}
}

func ExamplePeek() {
	src := rawiter.FromSlice([]rawiter.Item{opaque.Box(1), opaque.Box(2)})
	p := rawiter.Peekable(&src)
	defer rawiter.Destroy(&p)

	_ = rawiter.Peek(&p) // 1, not consumed
	_ = p.Next()         // 1
}
