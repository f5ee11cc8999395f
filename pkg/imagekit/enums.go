package imagekit

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// ColorType is the pixel layout of a DynamicImage.
// The ordinal values are part of the exported C API.
type ColorType uint32

const (
	L8 ColorType = iota
	LA8
	RGB8
	RGBA8
	L16
	LA16
	RGB16
	RGBA16
	RGB32F
	RGBA32F
)

var colorTypeNames = [...]string{"L8", "LA8", "RGB8", "RGBA8", "L16", "LA16", "RGB16", "RGBA16", "RGB32F", "RGBA32F"}

func (ct ColorType) String() string {
	if int(ct) < len(colorTypeNames) {
		return colorTypeNames[ct]
	}
	return fmt.Sprintf("ColorType(%d)", uint32(ct))
}

func (ct ColorType) Valid() bool { return ct <= RGBA32F }

// Channels is the number of channels per pixel.
func (ct ColorType) Channels() int {
	switch ct {
	case L8, L16:
		return 1
	case LA8, LA16:
		return 2
	case RGB8, RGB16, RGB32F:
		return 3
	default:
		return 4
	}
}

// BytesPerChannel is the width of a single channel in the byte representation.
func (ct ColorType) BytesPerChannel() int {
	switch ct {
	case L8, LA8, RGB8, RGBA8:
		return 1
	case L16, LA16, RGB16, RGBA16:
		return 2
	default:
		return 4
	}
}

func (ct ColorType) BytesPerPixel() int { return ct.Channels() * ct.BytesPerChannel() }

func (ct ColorType) HasAlpha() bool {
	switch ct {
	case LA8, RGBA8, LA16, RGBA16, RGBA32F:
		return true
	default:
		return false
	}
}

func (ct ColorType) HasColor() bool { return 2 < ct.Channels() }

func (ct ColorType) is16() bool { return ct.BytesPerChannel() != 1 }

// Extended maps the ColorType to its ExtendedColorType counterpart.
func (ct ColorType) Extended() ExtendedColorType {
	switch ct {
	case L8:
		return ExtL8
	case LA8:
		return ExtLA8
	case RGB8:
		return ExtRGB8
	case RGBA8:
		return ExtRGBA8
	case L16:
		return ExtL16
	case LA16:
		return ExtLA16
	case RGB16:
		return ExtRGB16
	case RGBA16:
		return ExtRGBA16
	case RGB32F:
		return ExtRGB32F
	default:
		return ExtRGBA32F
	}
}

// ExtendedColorType describes the layout of an encoder's input buffer.
type ExtendedColorType uint32

const (
	ExtA8 ExtendedColorType = iota
	ExtL1
	ExtLA1
	ExtRGB1
	ExtRGBA1
	ExtL2
	ExtLA2
	ExtRGB2
	ExtRGBA2
	ExtL4
	ExtLA4
	ExtRGB4
	ExtRGBA4
	ExtL8
	ExtLA8
	ExtRGB8
	ExtRGBA8
	ExtL16
	ExtLA16
	ExtRGB16
	ExtRGBA16
	ExtBGR8
	ExtBGRA8
	ExtRGB32F
	ExtRGBA32F
	ExtCMYK8
)

var extendedNames = [...]string{
	"A8", "L1", "LA1", "RGB1", "RGBA1", "L2", "LA2", "RGB2", "RGBA2", "L4", "LA4", "RGB4", "RGBA4",
	"L8", "LA8", "RGB8", "RGBA8", "L16", "LA16", "RGB16", "RGBA16", "BGR8", "BGRA8", "RGB32F", "RGBA32F", "CMYK8",
}

func (ect ExtendedColorType) String() string {
	if int(ect) < len(extendedNames) {
		return extendedNames[ect]
	}
	return fmt.Sprintf("ExtendedColorType(%d)", uint32(ect))
}

// FilterType selects the resampling filter of the resize family.
type FilterType uint32

const (
	Nearest FilterType = iota
	Triangle
	CatmullRom
	Gaussian
	Lanczos3
)

func (ft FilterType) resampler() (imaging.ResampleFilter, error) {
	switch ft {
	case Nearest:
		return imaging.NearestNeighbor, nil
	case Triangle:
		return imaging.Linear, nil
	case CatmullRom:
		return imaging.CatmullRom, nil
	case Gaussian:
		return imaging.Gaussian, nil
	case Lanczos3:
		return imaging.Lanczos, nil
	default:
		return imaging.ResampleFilter{}, ErrMalformed.F("unknown filter type: %d", uint32(ft))
	}
}

// ImageFormat identifies a container format.
// Formats without a codec in this package are still listed, so the ordinal values stay stable.
type ImageFormat uint32

const (
	PNG ImageFormat = iota
	JPEG
	GIF
	WEBP
	PNM
	TIFF
	TGA
	DDS
	BMP
	ICO
	HDR
	OpenEXR
	Farbfeld
	AVIF
	QOI
)

var formatNames = [...]string{"png", "jpeg", "gif", "webp", "pnm", "tiff", "tga", "dds", "bmp", "ico", "hdr", "openexr", "farbfeld", "avif", "qoi"}

func (f ImageFormat) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("ImageFormat(%d)", uint32(f))
}

// CanEncode reports whether WriteTo supports the format.
func (f ImageFormat) CanEncode() bool {
	switch f {
	case PNG, JPEG, GIF, TIFF, BMP:
		return true
	default:
		return false
	}
}

// CanDecode reports whether LoadFromMemory recognises the format.
func (f ImageFormat) CanDecode() bool {
	return f.CanEncode() || f == WEBP
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	if f, err := imaging.FormatFromFilename(path); err == nil {
		switch f {
		case imaging.PNG:
			return PNG, nil
		case imaging.JPEG:
			return JPEG, nil
		case imaging.GIF:
			return GIF, nil
		case imaging.TIFF:
			return TIFF, nil
		case imaging.BMP:
			return BMP, nil
		}
	}
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return 0, ErrUnsupportedFormat.F("no extension: %q", path)
	}
	switch strings.ToLower(path[i+1:]) {
	case "webp":
		return WEBP, nil
	case "pbm", "pgm", "ppm", "pam":
		return PNM, nil
	case "tga":
		return TGA, nil
	case "dds":
		return DDS, nil
	case "ico":
		return ICO, nil
	case "hdr":
		return HDR, nil
	case "exr":
		return OpenEXR, nil
	case "ff":
		return Farbfeld, nil
	case "avif":
		return AVIF, nil
	case "qoi":
		return QOI, nil
	}
	return 0, ErrUnsupportedFormat.F("unknown extension: %q", path[i:])
}
