package imagekit

import (
	"context"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageEncoder receives the raw pixel buffer of an image, as produced by Bytes.
type ImageEncoder interface {
	WriteImage(buf []byte, width, height uint32, ct ExtendedColorType) error
}

// WriteWithEncoder hands the raw pixel data to a custom encoder.
func (d *DynamicImage) WriteWithEncoder(enc ImageEncoder) error {
	w, h := d.Dimensions()
	if err := enc.WriteImage(d.Bytes(), w, h, d.color.Extended()); err != nil {
		return ErrEncoding.Wrap(err)
	}
	return nil
}

// WriteTo encodes the image into w.
func (d *DynamicImage) WriteTo(w io.Writer, format ImageFormat) error {
	if err := d.encode(w, format); err != nil {
		logger.Debug(context.Background(), "image encoding failed",
			logging.Field("format", format.String()),
			logging.ErrField(err))
		return err
	}
	return nil
}

func (d *DynamicImage) encode(w io.Writer, format ImageFormat) error {
	var err error
	switch format {
	case PNG:
		err = imaging.Encode(w, d.img, imaging.PNG)
	case JPEG:
		if d.color.is16() {
			return ErrUnsupportedColor.F("%s cannot be written as %s", d.color, format)
		}
		err = imaging.Encode(w, d.img, imaging.JPEG, imaging.JPEGQuality(95))
	case GIF:
		err = imaging.Encode(w, d.img, imaging.GIF)
	case TIFF:
		err = tiff.Encode(w, d.img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		err = bmp.Encode(w, d.img)
	default:
		return ErrUnsupportedFormat.F("no encoder for %s", format)
	}
	if err != nil {
		if ErrorTypeOf(err) != ErrorUnknown {
			return err
		}
		return ErrEncoding.Wrap(err)
	}
	return nil
}

// Save writes the image to path, picking the format from the extension.
func (d *DynamicImage) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return d.SaveWithFormat(path, format)
}

// SaveWithFormat writes the image to path in the given format.
func (d *DynamicImage) SaveWithFormat(path string, format ImageFormat) (rErr error) {
	if !format.CanEncode() {
		return ErrUnsupportedFormat.F("no encoder for %s", format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { rErr = errorkit.Merge(rErr, f.Close()) }()
	return d.WriteTo(f, format)
}
