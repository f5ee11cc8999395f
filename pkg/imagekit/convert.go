package imagekit

import (
	"image"
	"image/color"
	"image/draw"
)

type storage int

const (
	storageGray storage = iota
	storageGray16
	storageNRGBA
	storageNRGBA64
)

func storageOf(ct ColorType) storage {
	switch ct {
	case L8:
		return storageGray
	case L16:
		return storageGray16
	case LA8, RGB8, RGBA8:
		return storageNRGBA
	default:
		return storageNRGBA64
	}
}

type opaquer interface{ Opaque() bool }

func isOpaque(img image.Image) bool {
	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}
	return false
}

// colorTypeOf picks the ColorType matching the decoder's output.
// Decoders do not report whether the source had an alpha channel,
// so fully opaque images are treated as having none.
func colorTypeOf(img image.Image) ColorType {
	switch img := img.(type) {
	case *image.Gray:
		return L8
	case *image.Gray16:
		return L16
	case *image.Alpha:
		return LA8
	case *image.Alpha16:
		return LA16
	case *image.RGBA64, *image.NRGBA64:
		if isOpaque(img) {
			return RGB16
		}
		return RGBA16
	case *image.YCbCr, *image.CMYK:
		return RGB8
	default:
		if isOpaque(img) {
			return RGB8
		}
		return RGBA8
	}
}

// convert copies img into fresh storage laid out for ct.
func convert(img image.Image, ct ColorType) image.Image {
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	switch storageOf(ct) {
	case storageGray:
		dst := image.NewGray(r)
		draw.Draw(dst, r, img, b.Min, draw.Src)
		return dst
	case storageGray16:
		dst := image.NewGray16(r)
		draw.Draw(dst, r, img, b.Min, draw.Src)
		return dst
	case storageNRGBA:
		dst := image.NewNRGBA(r)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.SetNRGBA(x, y, shape8(c, ct))
			}
		}
		return dst
	default:
		dst := image.NewNRGBA64(r)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
				dst.SetNRGBA64(x, y, shape16(c, ct))
			}
		}
		return dst
	}
}

func shape8(c color.NRGBA, ct ColorType) color.NRGBA {
	if !ct.HasColor() {
		l := luma8(c.R, c.G, c.B)
		c.R, c.G, c.B = l, l, l
	}
	if !ct.HasAlpha() {
		c.A = 0xff
	}
	return c
}

func shape16(c color.NRGBA64, ct ColorType) color.NRGBA64 {
	if !ct.HasColor() {
		l := luma16(c.R, c.G, c.B)
		c.R, c.G, c.B = l, l, l
	}
	if !ct.HasAlpha() {
		c.A = 0xffff
	}
	return c
}

// luma weights follow color.GrayModel.
func luma8(r, g, b uint8) uint8 {
	y := (19595*uint32(r)*0x101 + 38470*uint32(g)*0x101 + 7471*uint32(b)*0x101 + 1<<15) >> 24
	return uint8(y)
}

func luma16(r, g, b uint16) uint16 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint16(y)
}

// ConvertTo returns a copy of the image stored as ct.
func (d *DynamicImage) ConvertTo(ct ColorType) (*DynamicImage, error) {
	if !ct.Valid() {
		return nil, ErrUnsupportedColor.F("%d", uint32(ct))
	}
	return &DynamicImage{img: convert(d.img, ct), color: ct}, nil
}

func (d *DynamicImage) into(ct ColorType) *DynamicImage {
	return &DynamicImage{img: convert(d.img, ct), color: ct}
}

func (d *DynamicImage) IntoLuma8() *DynamicImage      { return d.into(L8) }
func (d *DynamicImage) IntoLumaAlpha8() *DynamicImage { return d.into(LA8) }
func (d *DynamicImage) IntoRGB8() *DynamicImage       { return d.into(RGB8) }
func (d *DynamicImage) IntoRGBA8() *DynamicImage      { return d.into(RGBA8) }

func (d *DynamicImage) IntoLuma16() *DynamicImage      { return d.into(L16) }
func (d *DynamicImage) IntoLumaAlpha16() *DynamicImage { return d.into(LA16) }
func (d *DynamicImage) IntoRGB16() *DynamicImage       { return d.into(RGB16) }
func (d *DynamicImage) IntoRGBA16() *DynamicImage      { return d.into(RGBA16) }

func (d *DynamicImage) IntoRGB32F() *DynamicImage  { return d.into(RGB32F) }
func (d *DynamicImage) IntoRGBA32F() *DynamicImage { return d.into(RGBA32F) }
