package imagekit

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(v)
	}
}

// AdjustContrast changes the contrast by c percent. Negative values decrease it.
// c is clamped into [-100, 100].
func (d *DynamicImage) AdjustContrast(c float32) *DynamicImage {
	return d.derive(imaging.AdjustContrast(d.img, math.Max(-100, math.Min(100, float64(c)))))
}

// Blur applies a gaussian blur with the given sigma.
func (d *DynamicImage) Blur(sigma float32) *DynamicImage {
	return d.derive(imaging.Blur(d.img, float64(sigma)))
}

// Brighten adds value to every color channel, leaving alpha untouched.
func (d *DynamicImage) Brighten(value int32) *DynamicImage {
	v := int(value)
	return d.derive(imaging.AdjustFunc(d.img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: clamp8(int(c.R) + v), G: clamp8(int(c.G) + v), B: clamp8(int(c.B) + v), A: c.A}
	}))
}

// HueRotate rotates the hue of every pixel by value degrees.
func (d *DynamicImage) HueRotate(value int32) *DynamicImage {
	shift := float64(value % 360)
	return d.derive(imaging.AdjustFunc(d.img, func(c color.NRGBA) color.NRGBA {
		h, s, v := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hsv()
		h = math.Mod(h+shift+360, 360)
		r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: c.A}
	}))
}

// Invert negates every color channel in place.
func (d *DynamicImage) Invert() {
	d.img = convert(imaging.Invert(d.img), d.color)
}

// Crop returns the part of the image inside the rectangle, clipped to the image bounds.
func (d *DynamicImage) Crop(x, y, width, height uint32) *DynamicImage {
	return d.CropImm(x, y, width, height)
}

// CropImm is Crop; both leave the receiver untouched.
func (d *DynamicImage) CropImm(x, y, width, height uint32) *DynamicImage {
	b := d.img.Bounds()
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Add(b.Min)
	return d.derive(imaging.Crop(d.img, r))
}

// Filter3x3 convolves the image with a 3x3 kernel given in row-major order.
// The kernel is normalised by its sum when the sum is not zero.
func (d *DynamicImage) Filter3x3(kernel []float32) (*DynamicImage, error) {
	if len(kernel) != 9 {
		return nil, ErrMalformed.F("3x3 kernel needs 9 values, got %d", len(kernel))
	}
	var k [9]float64
	for i, v := range kernel {
		k[i] = float64(v)
	}
	return d.derive(imaging.Convolve3x3(d.img, k, &imaging.ConvolveOptions{Normalize: true})), nil
}

func (d *DynamicImage) FlipH() *DynamicImage { return d.derive(imaging.FlipH(d.img)) }

func (d *DynamicImage) FlipV() *DynamicImage { return d.derive(imaging.FlipV(d.img)) }

// Rotate90 rotates clockwise.
func (d *DynamicImage) Rotate90() *DynamicImage { return d.derive(imaging.Rotate270(d.img)) }

func (d *DynamicImage) Rotate180() *DynamicImage { return d.derive(imaging.Rotate180(d.img)) }

// Rotate270 rotates clockwise, which is a quarter turn counter-clockwise.
func (d *DynamicImage) Rotate270() *DynamicImage { return d.derive(imaging.Rotate90(d.img)) }

// Grayscale returns the luma version of the image, keeping alpha and bit depth.
func (d *DynamicImage) Grayscale() *DynamicImage {
	var ct ColorType
	switch {
	case d.color.is16() && d.color.HasAlpha():
		ct = LA16
	case d.color.is16():
		ct = L16
	case d.color.HasAlpha():
		ct = LA8
	default:
		ct = L8
	}
	if d.color.is16() {
		return d.into(ct)
	}
	return &DynamicImage{img: convert(imaging.Grayscale(d.img), ct), color: ct}
}

// Unsharpen sharpens the image by adding back the difference to its blurred version,
// for every channel difference that exceeds threshold.
func (d *DynamicImage) Unsharpen(sigma float32, threshold int32) *DynamicImage {
	src := imaging.Clone(d.img)
	blurred := imaging.Blur(src, float64(sigma))
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i < len(src.Pix); i++ {
		if i%4 == 3 {
			out.Pix[i] = src.Pix[i]
			continue
		}
		orig := int(src.Pix[i])
		diff := orig - int(blurred.Pix[i])
		if abs(diff) > int(threshold) {
			out.Pix[i] = clamp8(orig + diff)
		} else {
			out.Pix[i] = src.Pix[i]
		}
	}
	return d.derive(out)
}

func resizeDimensions(width, height, nwidth, nheight uint32, fill bool) (uint32, uint32) {
	if width == 0 || height == 0 {
		return 0, 0
	}
	wratio := float64(nwidth) / float64(width)
	hratio := float64(nheight) / float64(height)
	ratio := math.Min(wratio, hratio)
	if fill {
		ratio = math.Max(wratio, hratio)
	}
	nw := math.Max(math.Round(float64(width)*ratio), 1)
	nh := math.Max(math.Round(float64(height)*ratio), 1)
	if nw > math.MaxUint32 {
		ratio = math.MaxUint32 / float64(width)
		return math.MaxUint32, uint32(math.Max(math.Round(float64(height)*ratio), 1))
	}
	if nh > math.MaxUint32 {
		ratio = math.MaxUint32 / float64(height)
		return uint32(math.Max(math.Round(float64(width)*ratio), 1)), math.MaxUint32
	}
	return uint32(nw), uint32(nh)
}

// Resize scales the image to fit inside nwidth x nheight, preserving the aspect ratio.
func (d *DynamicImage) Resize(nwidth, nheight uint32, filter FilterType) (*DynamicImage, error) {
	w, h := resizeDimensions(d.Width(), d.Height(), nwidth, nheight, false)
	return d.ResizeExact(w, h, filter)
}

// ResizeExact scales the image to exactly nwidth x nheight.
func (d *DynamicImage) ResizeExact(nwidth, nheight uint32, filter FilterType) (*DynamicImage, error) {
	f, err := filter.resampler()
	if err != nil {
		return nil, err
	}
	if nwidth == 0 || nheight == 0 {
		return d.derive(image.NewNRGBA(image.Rect(0, 0, int(nwidth), int(nheight)))), nil
	}
	return d.derive(imaging.Resize(d.img, int(nwidth), int(nheight), f)), nil
}

// ResizeToFill scales the image to cover nwidth x nheight and crops the overflow around the center.
func (d *DynamicImage) ResizeToFill(nwidth, nheight uint32, filter FilterType) (*DynamicImage, error) {
	f, err := filter.resampler()
	if err != nil {
		return nil, err
	}
	if nwidth == 0 || nheight == 0 {
		return d.derive(image.NewNRGBA(image.Rect(0, 0, int(nwidth), int(nheight)))), nil
	}
	return d.derive(imaging.Fill(d.img, int(nwidth), int(nheight), imaging.Center, f)), nil
}

// Thumbnail is a fast aspect preserving downscale to fit inside nwidth x nheight.
func (d *DynamicImage) Thumbnail(nwidth, nheight uint32) *DynamicImage {
	w, h := resizeDimensions(d.Width(), d.Height(), nwidth, nheight, false)
	return d.ThumbnailExact(w, h)
}

// ThumbnailExact is a fast downscale to exactly nwidth x nheight.
func (d *DynamicImage) ThumbnailExact(nwidth, nheight uint32) *DynamicImage {
	if nwidth == 0 || nheight == 0 {
		return d.derive(image.NewNRGBA(image.Rect(0, 0, int(nwidth), int(nheight))))
	}
	return d.derive(imaging.Resize(d.img, int(nwidth), int(nheight), imaging.Box))
}
