package imagekit_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/imagebridge/pkg/imagekit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// gradient builds an opaque image where every pixel has a distinct color.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 100, A: 255})
		}
	}
	return img
}

func rgba(img *image.NRGBA, x, y int) imagekit.RGBA {
	c := img.NRGBAAt(x, y)
	return imagekit.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestFromImage(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("opaque color images are RGB8", func(t *testcase.T) {
		assert.Equal(t, imagekit.RGB8, imagekit.FromImage(gradient(2, 2)).Color())
	})

	s.Test("translucent color images are RGBA8", func(t *testcase.T) {
		img := gradient(2, 2)
		img.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 10})
		d := imagekit.FromImage(img)
		assert.Equal(t, imagekit.RGBA8, d.Color())
		assert.Equal(t, imagekit.RGBA{R: 1, A: 10}, d.GetPixel(0, 0))
	})

	s.Test("gray images keep their depth", func(t *testcase.T) {
		assert.Equal(t, imagekit.L8, imagekit.FromImage(image.NewGray(image.Rect(0, 0, 1, 1))).Color())
		assert.Equal(t, imagekit.L16, imagekit.FromImage(image.NewGray16(image.Rect(0, 0, 1, 1))).Color())
	})

	s.Test("16 bit color images keep their depth", func(t *testcase.T) {
		img := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
		img.SetNRGBA64(0, 0, color.NRGBA64{R: 1, A: 0xffff})
		assert.Equal(t, imagekit.RGB16, imagekit.FromImage(img).Color())
	})

	s.Test("offset bounds are normalised", func(t *testcase.T) {
		img := gradient(4, 4).SubImage(image.Rect(1, 1, 3, 3))
		d := imagekit.FromImage(img)
		w, h := d.Dimensions()
		assert.Equal(t, uint32(2), w)
		assert.Equal(t, uint32(2), h)
		assert.Equal(t, rgba(gradient(4, 4), 1, 1), d.GetPixel(0, 0))
	})
}

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("blank image of the requested type", func(t *testcase.T) {
		d, err := imagekit.New(3, 2, imagekit.RGB16)
		assert.NoError(t, err)
		assert.Equal(t, imagekit.RGB16, d.Color())
		assert.Equal(t, uint32(3), d.Width())
		assert.Equal(t, uint32(2), d.Height())
		assert.Equal(t, imagekit.RGBA{A: 255}, d.GetPixel(2, 1))
	})

	s.Test("unknown color type", func(t *testcase.T) {
		_, err := imagekit.New(1, 1, imagekit.ColorType(42))
		assert.Equal(t, imagekit.ErrorUnsupportedColor, imagekit.ErrorTypeOf(err))
	})
}

func TestDynamicImage_GetPixel(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	subject := testcase.Let(s, func(t *testcase.T) *imagekit.DynamicImage {
		return imagekit.FromImage(gradient(3, 2))
	})

	s.Test("in bounds", func(t *testcase.T) {
		assert.True(t, subject.Get(t).InBounds(2, 1))
		assert.False(t, subject.Get(t).InBounds(3, 0))
		assert.False(t, subject.Get(t).InBounds(0, 2))
	})

	s.Test("reads the stored color", func(t *testcase.T) {
		assert.Equal(t, rgba(gradient(3, 2), 2, 1), subject.Get(t).GetPixel(2, 1))
	})

	s.Test("out of bounds is a violation", func(t *testcase.T) {
		out := assert.Panic(t, func() { subject.Get(t).GetPixel(3, 0) })
		assert.Equal[any](t, imagekit.ErrOutOfBounds, out)
	})
}

func TestLoadFromMemory(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	for _, format := range []imagekit.ImageFormat{imagekit.PNG, imagekit.BMP, imagekit.TIFF} {
		s.Test("lossless round trip through "+format.String(), func(t *testcase.T) {
			src := imagekit.FromImage(gradient(5, 3))
			var buf bytes.Buffer
			assert.NoError(t, src.WriteTo(&buf, format))

			got, err := imagekit.LoadFromMemory(buf.Bytes())
			assert.NoError(t, err)
			assert.Equal(t, uint32(5), got.Width())
			assert.Equal(t, uint32(3), got.Height())
			for y := uint32(0); y < 3; y++ {
				for x := uint32(0); x < 5; x++ {
					assert.Equal(t, src.GetPixel(x, y), got.GetPixel(x, y))
				}
			}
		})
	}

	s.Test("lossy formats keep the dimensions", func(t *testcase.T) {
		for _, format := range []imagekit.ImageFormat{imagekit.JPEG, imagekit.GIF} {
			var buf bytes.Buffer
			assert.NoError(t, imagekit.FromImage(gradient(4, 6)).WriteTo(&buf, format))
			got, err := imagekit.LoadFromMemory(buf.Bytes())
			assert.NoError(t, err)
			w, h := got.Dimensions()
			assert.Equal(t, [2]uint32{4, 6}, [2]uint32{w, h})
		}
	})

	s.Test("unknown content", func(t *testcase.T) {
		_, err := imagekit.LoadFromMemory([]byte("definitely not an image"))
		assert.Error(t, err)
		assert.Equal(t, imagekit.ErrorUnsupportedFormat, imagekit.ErrorTypeOf(err))
	})

	s.Test("empty content", func(t *testcase.T) {
		_, err := imagekit.LoadFromMemory(nil)
		assert.Equal(t, imagekit.ErrorUnsupportedFormat, imagekit.ErrorTypeOf(err))
	})

	s.Test("truncated content is a decoding error", func(t *testcase.T) {
		var buf bytes.Buffer
		assert.NoError(t, imagekit.FromImage(gradient(8, 8)).WriteTo(&buf, imagekit.PNG))
		_, err := imagekit.LoadFromMemory(buf.Bytes()[:buf.Len()/2])
		assert.Equal(t, imagekit.ErrorDecoding, imagekit.ErrorTypeOf(err))
	})
}
