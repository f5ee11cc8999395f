// Package imagekit is the image handling collaborator of the bridge.
//
// A DynamicImage pairs a decoded image with the ColorType it is stored in.
// Storage is normalised per ColorType:
//
//	L8                          -> *image.Gray
//	L16                         -> *image.Gray16
//	LA8, RGB8, RGBA8            -> *image.NRGBA
//	LA16, RGB16, RGBA16, 32F    -> *image.NRGBA64
//
// Transformations return new images and leave the receiver untouched, except Invert.
package imagekit

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"io/fs"

	"github.com/disintegration/imaging"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	_ "golang.org/x/image/webp"
)

type DynamicImage struct {
	img   image.Image
	color ColorType
}

// FromImage wraps any image.Image, picking the ColorType that preserves most of its information.
func FromImage(img image.Image) *DynamicImage {
	ct := colorTypeOf(img)
	return &DynamicImage{img: convert(img, ct), color: ct}
}

// New allocates a blank image of the given ColorType.
func New(width, height uint32, ct ColorType) (*DynamicImage, error) {
	if !ct.Valid() {
		return nil, ErrUnsupportedColor.F("%d", uint32(ct))
	}
	r := image.Rect(0, 0, int(width), int(height))
	var img image.Image
	switch storageOf(ct) {
	case storageGray:
		img = image.NewGray(r)
	case storageGray16:
		img = image.NewGray16(r)
	case storageNRGBA:
		img = image.NewNRGBA(r)
	default:
		img = image.NewNRGBA64(r)
	}
	d := &DynamicImage{img: img, color: ct}
	if !ct.HasAlpha() {
		d.img = convert(img, ct)
	}
	return d, nil
}

// LoadFromMemory decodes an image, guessing the format from its content.
func LoadFromMemory(data []byte) (*DynamicImage, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads an image in any of the supported formats.
func Decode(r io.Reader) (*DynamicImage, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		err = decodeError(err)
		logger.Debug(context.Background(), "image decoding failed", logging.ErrField(err))
		return nil, err
	}
	return FromImage(img), nil
}

// Open decodes the image file at path.
func Open(path string) (*DynamicImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		err = decodeError(err)
		logger.Debug(context.Background(), "image open failed",
			logging.Field("path", path),
			logging.ErrField(err))
		return nil, err
	}
	return FromImage(img), nil
}

func decodeError(err error) error {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, image.ErrFormat):
		return ErrUnsupportedFormat.Wrap(err)
	case errors.As(err, &pathErr):
		return err
	default:
		return ErrDecoding.Wrap(err)
	}
}

// Image exposes the underlying storage.
func (d *DynamicImage) Image() image.Image { return d.img }

func (d *DynamicImage) Color() ColorType { return d.color }

func (d *DynamicImage) Width() uint32 { return uint32(d.img.Bounds().Dx()) }

func (d *DynamicImage) Height() uint32 { return uint32(d.img.Bounds().Dy()) }

func (d *DynamicImage) Dimensions() (width, height uint32) { return d.Width(), d.Height() }

// InBounds reports whether (x, y) addresses a pixel of the image.
func (d *DynamicImage) InBounds(x, y uint32) bool {
	return x < d.Width() && y < d.Height()
}

// RGBA is a non premultiplied 8 bit color.
type RGBA struct {
	R, G, B, A uint8
}

// GetPixel returns the color at (x, y) as 8 bit RGBA.
// Coordinates outside the image are a violation.
func (d *DynamicImage) GetPixel(x, y uint32) RGBA {
	if !d.InBounds(x, y) {
		logger.Error(context.Background(), "pixel lookup out of bounds",
			logging.Fields{"x": x, "y": y, "width": d.Width(), "height": d.Height()})
		panic(ErrOutOfBounds)
	}
	return d.pixel(int(x), int(y))
}

func (d *DynamicImage) pixel(x, y int) RGBA {
	b := d.img.Bounds()
	c := color.NRGBAModel.Convert(d.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Clone makes a deep copy.
func (d *DynamicImage) Clone() *DynamicImage {
	return &DynamicImage{img: convert(d.img, d.color), color: d.color}
}

// derive wraps the result of an 8 bit transformation back into the receiver's ColorType.
func (d *DynamicImage) derive(img image.Image) *DynamicImage {
	return &DynamicImage{img: convert(img, d.color), color: d.color}
}
