package main

/*
#include "bridge.h"
*/
import "C"

import (
	"bufio"
	"context"
	"runtime/cgo"
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/imagebridge/pkg/callerio"
	"go.llib.dev/imagebridge/pkg/imagekit"
)

const (
	ErrNullImage    errorkit.Error = "image is null"
	ErrNullArgument errorkit.Error = "required argument is null"
)

func violation(op string, err errorkit.Error) {
	logger.Error(context.Background(), "image bridge contract violation",
		logging.Field("operation", op),
		logging.ErrField(err))
	panic(err)
}

func newImage(d *imagekit.DynamicImage) *C.DynamicImage {
	if d == nil {
		return nil
	}
	p := (*C.DynamicImage)(C.malloc(C.size_t(unsafe.Sizeof(C.DynamicImage{}))))
	p.inner = C.uintptr_t(cgo.NewHandle(d))
	return p
}

func imageOf(op string, p *C.DynamicImage) *imagekit.DynamicImage {
	if p == nil || p.inner == 0 {
		violation(op, ErrNullImage)
	}
	return cgo.Handle(p.inner).Value().(*imagekit.DynamicImage)
}

func errorType(err error) C.uint32_t {
	return C.uint32_t(imagekit.ErrorTypeOf(err))
}

// orNull reports failed transformations to C as NULL.
func orNull(op string, d *imagekit.DynamicImage, err error) *C.DynamicImage {
	if err != nil {
		logger.Debug(context.Background(), "image operation failed",
			logging.Field("operation", op),
			logging.ErrField(err))
		return nil
	}
	return newImage(d)
}

func loadResult(d *imagekit.DynamicImage, err error) C.LoadFromMemoryResult {
	if err != nil {
		return C.LoadFromMemoryResult{err: errorType(err)}
	}
	return C.LoadFromMemoryResult{res: newImage(d), err: errorType(nil)}
}

//export dynamic_image_load_from_memory
func dynamic_image_load_from_memory(bytes *C.uint8_t, size C.uintptr_t) C.LoadFromMemoryResult {
	return loadResult(imagekit.LoadFromMemory(unsafe.Slice((*byte)(unsafe.Pointer(bytes)), int(size))))
}

//export dynamic_image_open
func dynamic_image_open(path *C.char) C.LoadFromMemoryResult {
	if path == nil {
		violation("open", ErrNullArgument)
	}
	return loadResult(imagekit.Open(C.GoString(path)))
}

//export dynamic_image_new
func dynamic_image_new(width, height C.uint32_t, color C.uint32_t) *C.DynamicImage {
	d, err := imagekit.New(uint32(width), uint32(height), imagekit.ColorType(color))
	return orNull("new", d, err)
}

//export dynamic_image_clone
func dynamic_image_clone(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("clone", this).Clone())
}

//export dynamic_image_free
func dynamic_image_free(this *C.DynamicImage) {
	if this == nil || this.inner == 0 {
		return
	}
	cgo.Handle(this.inner).Delete()
	this.inner = 0
	C.free(unsafe.Pointer(this))
}

//export dynamic_image_adjust_contrast
func dynamic_image_adjust_contrast(this *C.DynamicImage, c C.float) *C.DynamicImage {
	return newImage(imageOf("adjust_contrast", this).AdjustContrast(float32(c)))
}

// dynamic_image_as_bytes returns a malloc allocated copy of the raw pixel data.
//
//export dynamic_image_as_bytes
func dynamic_image_as_bytes(this *C.DynamicImage, count *C.uintptr_t) *C.uint8_t {
	b := imageOf("as_bytes", this).Bytes()
	if count != nil {
		*count = C.uintptr_t(len(b))
	}
	return (*C.uint8_t)(C.CBytes(b))
}

// dynamic_image_into_bytes is dynamic_image_as_bytes that also frees the image.
//
//export dynamic_image_into_bytes
func dynamic_image_into_bytes(this *C.DynamicImage, size *C.uintptr_t) *C.uint8_t {
	out := dynamic_image_as_bytes(this, size)
	dynamic_image_free(this)
	return out
}

//export dynamic_image_blur
func dynamic_image_blur(this *C.DynamicImage, sigma C.float) *C.DynamicImage {
	return newImage(imageOf("blur", this).Blur(float32(sigma)))
}

//export dynamic_image_brighten
func dynamic_image_brighten(this *C.DynamicImage, value C.int32_t) *C.DynamicImage {
	return newImage(imageOf("brighten", this).Brighten(int32(value)))
}

//export dynamic_image_invert
func dynamic_image_invert(this *C.DynamicImage) {
	imageOf("invert", this).Invert()
}

//export dynamic_image_color
func dynamic_image_color(this *C.DynamicImage) C.uint32_t {
	return C.uint32_t(imageOf("color", this).Color())
}

//export dynamic_image_crop
func dynamic_image_crop(this *C.DynamicImage, x, y, width, height C.uint32_t) *C.DynamicImage {
	return newImage(imageOf("crop", this).Crop(uint32(x), uint32(y), uint32(width), uint32(height)))
}

//export dynamic_image_crop_imm
func dynamic_image_crop_imm(this *C.DynamicImage, x, y, width, height C.uint32_t) *C.DynamicImage {
	return newImage(imageOf("crop_imm", this).CropImm(uint32(x), uint32(y), uint32(width), uint32(height)))
}

// dynamic_image_filter3x3 returns NULL unless kernel holds exactly 9 values.
//
//export dynamic_image_filter3x3
func dynamic_image_filter3x3(this *C.DynamicImage, kernel *C.float, size C.uintptr_t) *C.DynamicImage {
	d := imageOf("filter3x3", this)
	out, err := d.Filter3x3(unsafe.Slice((*float32)(unsafe.Pointer(kernel)), int(size)))
	return orNull("filter3x3", out, err)
}

//export dynamic_image_fliph
func dynamic_image_fliph(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("fliph", this).FlipH())
}

//export dynamic_image_flipv
func dynamic_image_flipv(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("flipv", this).FlipV())
}

//export dynamic_image_grayscale
func dynamic_image_grayscale(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("grayscale", this).Grayscale())
}

//export dynamic_image_unsharpen
func dynamic_image_unsharpen(this *C.DynamicImage, sigma C.float, threshold C.int32_t) *C.DynamicImage {
	return newImage(imageOf("unsharpen", this).Unsharpen(float32(sigma), int32(threshold)))
}

//export dynamic_image_width
func dynamic_image_width(this *C.DynamicImage) C.uint32_t {
	return C.uint32_t(imageOf("width", this).Width())
}

//export dynamic_image_height
func dynamic_image_height(this *C.DynamicImage) C.uint32_t {
	return C.uint32_t(imageOf("height", this).Height())
}

//export dynamic_image_dimensions
func dynamic_image_dimensions(this *C.DynamicImage) C.Dimensions {
	w, h := imageOf("dimensions", this).Dimensions()
	return C.Dimensions{width: C.uint32_t(w), height: C.uint32_t(h)}
}

//export dynamic_image_huerotate
func dynamic_image_huerotate(this *C.DynamicImage, value C.int32_t) *C.DynamicImage {
	return newImage(imageOf("huerotate", this).HueRotate(int32(value)))
}

//export dynamic_image_resize
func dynamic_image_resize(this *C.DynamicImage, nwidth, nheight C.uint32_t, filter C.uint32_t) *C.DynamicImage {
	d, err := imageOf("resize", this).Resize(uint32(nwidth), uint32(nheight), imagekit.FilterType(filter))
	return orNull("resize", d, err)
}

//export dynamic_image_resize_exact
func dynamic_image_resize_exact(this *C.DynamicImage, nwidth, nheight C.uint32_t, filter C.uint32_t) *C.DynamicImage {
	d, err := imageOf("resize_exact", this).ResizeExact(uint32(nwidth), uint32(nheight), imagekit.FilterType(filter))
	return orNull("resize_exact", d, err)
}

//export dynamic_image_resize_to_fill
func dynamic_image_resize_to_fill(this *C.DynamicImage, nwidth, nheight C.uint32_t, filter C.uint32_t) *C.DynamicImage {
	d, err := imageOf("resize_to_fill", this).ResizeToFill(uint32(nwidth), uint32(nheight), imagekit.FilterType(filter))
	return orNull("resize_to_fill", d, err)
}

//export dynamic_image_rotate90
func dynamic_image_rotate90(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("rotate90", this).Rotate90())
}

//export dynamic_image_rotate180
func dynamic_image_rotate180(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("rotate180", this).Rotate180())
}

//export dynamic_image_rotate270
func dynamic_image_rotate270(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("rotate270", this).Rotate270())
}

//export dynamic_image_thumbnail
func dynamic_image_thumbnail(this *C.DynamicImage, nwidth, nheight C.uint32_t) *C.DynamicImage {
	return newImage(imageOf("thumbnail", this).Thumbnail(uint32(nwidth), uint32(nheight)))
}

//export dynamic_image_thumbnail_exact
func dynamic_image_thumbnail_exact(this *C.DynamicImage, nwidth, nheight C.uint32_t) *C.DynamicImage {
	return newImage(imageOf("thumbnail_exact", this).ThumbnailExact(uint32(nwidth), uint32(nheight)))
}

//export dynamic_image_into_luma8
func dynamic_image_into_luma8(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_luma8", this).IntoLuma8())
}

//export dynamic_image_into_luma_alpha8
func dynamic_image_into_luma_alpha8(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_luma_alpha8", this).IntoLumaAlpha8())
}

//export dynamic_image_into_rgb8
func dynamic_image_into_rgb8(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_rgb8", this).IntoRGB8())
}

//export dynamic_image_into_rgba8
func dynamic_image_into_rgba8(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_rgba8", this).IntoRGBA8())
}

//export dynamic_image_into_luma16
func dynamic_image_into_luma16(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_luma16", this).IntoLuma16())
}

//export dynamic_image_into_luma_alpha16
func dynamic_image_into_luma_alpha16(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_luma_alpha16", this).IntoLumaAlpha16())
}

//export dynamic_image_into_rgb16
func dynamic_image_into_rgb16(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_rgb16", this).IntoRGB16())
}

//export dynamic_image_into_rgba16
func dynamic_image_into_rgba16(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_rgba16", this).IntoRGBA16())
}

//export dynamic_image_into_rgb32f
func dynamic_image_into_rgb32f(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_rgb32f", this).IntoRGB32F())
}

//export dynamic_image_into_rgba32f
func dynamic_image_into_rgba32f(this *C.DynamicImage) *C.DynamicImage {
	return newImage(imageOf("into_rgba32f", this).IntoRGBA32F())
}

//export dynamic_image_get_pixel
func dynamic_image_get_pixel(this *C.DynamicImage, x, y C.uint32_t) C.Rgba {
	c := imageOf("get_pixel", this).GetPixel(uint32(x), uint32(y))
	return C.Rgba{r: C.uint8_t(c.R), g: C.uint8_t(c.G), b: C.uint8_t(c.B), a: C.uint8_t(c.A)}
}

//export dynamic_image_in_bounds
func dynamic_image_in_bounds(this *C.DynamicImage, x, y C.uint32_t) C.bool {
	return C.bool(imageOf("in_bounds", this).InBounds(uint32(x), uint32(y)))
}

// dynamic_image_pixels yields PixelResult items in row-major order.
// The iterator keeps the image alive, even after dynamic_image_free.
//
//export dynamic_image_pixels
func dynamic_image_pixels(this *C.DynamicImage) C.RawIterator {
	return raw(imageOf("pixels", this).Pixels())
}

// dynamic_image_save returns NULL on success, otherwise an error message released with imagebridge_free.
//
//export dynamic_image_save
func dynamic_image_save(this *C.DynamicImage, path *C.char) *C.char {
	d := imageOf("save", this)
	if path == nil {
		violation("save", ErrNullArgument)
	}
	if err := d.Save(C.GoString(path)); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

//export dynamic_image_save_with_format
func dynamic_image_save_with_format(this *C.DynamicImage, path *C.char, format C.uint32_t) C.uint32_t {
	d := imageOf("save_with_format", this)
	if path == nil {
		violation("save_with_format", ErrNullArgument)
	}
	return errorType(d.SaveWithFormat(C.GoString(path), imagekit.ImageFormat(format)))
}

func callerWriter(cw C.Writer) *callerio.Writer {
	w := &callerio.Writer{UserData: cw.user_data}
	if cw.write_fn != nil {
		w.WriteFn = func(ud unsafe.Pointer, p []byte) int {
			return int(C.call_write(cw.write_fn, ud, (*C.uint8_t)(unsafe.SliceData(p)), C.uintptr_t(len(p))))
		}
	}
	if cw.flush_fn != nil {
		w.FlushFn = func(ud unsafe.Pointer) { C.call_flush(cw.flush_fn, ud) }
	}
	if cw.seek_fn != nil {
		w.SeekFn = func(ud unsafe.Pointer, pos callerio.SeekFrom) uint64 {
			return uint64(C.call_seek(cw.seek_fn, ud, C.SeekFrom{ty: C.SeekType(pos.Type), val: C.int64_t(pos.Offset)}))
		}
	}
	return w
}

// dynamic_image_write_to encodes the image through the caller's write callback.
// flush_fn, when set, is called once the whole image was written.
//
//export dynamic_image_write_to
func dynamic_image_write_to(this *C.DynamicImage, w *C.Writer, format C.uint32_t) C.uint32_t {
	d := imageOf("write_to", this)
	if w == nil {
		violation("write_to", ErrNullArgument)
	}
	cw := callerWriter(*w)
	bw := bufio.NewWriter(cw)
	err := d.WriteTo(bw, imagekit.ImageFormat(format))
	if err == nil {
		err = bw.Flush()
	}
	if err == nil && cw.FlushFn != nil {
		err = cw.Flush()
	}
	return errorType(err)
}

//export dynamic_image_write_with_encoder
func dynamic_image_write_with_encoder(this *C.DynamicImage, encoder *C.ImageEncoder) C.uint32_t {
	d := imageOf("write_with_encoder", this)
	if encoder == nil {
		violation("write_with_encoder", ErrNullArgument)
	}
	ce := *encoder
	enc := &callerio.Encoder{UserData: ce.user_data}
	if ce.writeFn != nil {
		enc.WriteFn = func(ud unsafe.Pointer, buf []byte, width, height uint32, ct imagekit.ExtendedColorType) {
			C.call_encode(ce.writeFn, ud, (*C.uint8_t)(unsafe.SliceData(buf)), C.uintptr_t(len(buf)),
				C.uint32_t(width), C.uint32_t(height), C.uint32_t(ct))
		}
	}
	return errorType(d.WriteWithEncoder(enc))
}

//export dynamic_image_perceptual_hash
func dynamic_image_perceptual_hash(this *C.DynamicImage, out *C.uint64_t) C.uint32_t {
	h, err := imageOf("perceptual_hash", this).PerceptualHash()
	if err == nil && out != nil {
		*out = C.uint64_t(h)
	}
	return errorType(err)
}

//export dynamic_image_hash_distance
func dynamic_image_hash_distance(this, other *C.DynamicImage, out *C.int32_t) C.uint32_t {
	n, err := imageOf("hash_distance", this).Distance(imageOf("hash_distance", other))
	if err == nil && out != nil {
		*out = C.int32_t(n)
	}
	return errorType(err)
}
