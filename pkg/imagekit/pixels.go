package imagekit

import (
	"go.llib.dev/imagebridge/pkg/opaque"
	"go.llib.dev/imagebridge/pkg/rawiter"
)

// PixelResult is the item type of Pixels.
type PixelResult struct {
	X, Y  uint32
	Color RGBA
}

type pixelIter struct {
	img  *DynamicImage
	x, y uint32
	w, h uint32
}

func (i *pixelIter) Next() rawiter.Item {
	if i.y >= i.h || i.w == 0 {
		return nil
	}
	px := PixelResult{X: i.x, Y: i.y, Color: i.img.pixel(int(i.x), int(i.y))}
	i.x++
	if i.x == i.w {
		i.x = 0
		i.y++
	}
	return opaque.Box(px)
}

// Pixels iterates over every pixel in row-major order.
// Items are boxed PixelResult values.
// The handle keeps the image alive; changes to the image during iteration are visible to it.
func (d *DynamicImage) Pixels() rawiter.Handle {
	return rawiter.From(pixelIter{img: d, w: d.Width(), h: d.Height()})
}
