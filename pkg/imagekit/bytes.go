package imagekit

import (
	"encoding/binary"
	"image"
	"math"
)

// Bytes returns the raw pixel data, rows top to bottom, channels packed per ColorType.
// Multi byte channels are little-endian; 32F channels hold values in [0, 1].
func (d *DynamicImage) Bytes() []byte {
	w, h := int(d.Width()), int(d.Height())
	bpp := d.color.BytesPerPixel()
	out := make([]byte, 0, w*h*bpp)
	switch img := d.img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			i := y * img.Stride
			out = append(out, img.Pix[i:i+w]...)
		}
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out = binary.LittleEndian.AppendUint16(out, img.Gray16At(x, y).Y)
			}
		}
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := img.PixOffset(x, y)
				p := img.Pix[i : i+4]
				switch d.color {
				case LA8:
					out = append(out, p[0], p[3])
				case RGB8:
					out = append(out, p[0], p[1], p[2])
				default:
					out = append(out, p...)
				}
			}
		}
	case *image.NRGBA64:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := img.NRGBA64At(x, y)
				for _, ch := range channels16(c.R, c.G, c.B, c.A, d.color) {
					if d.color == RGB32F || d.color == RGBA32F {
						out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(ch)/math.MaxUint16))
					} else {
						out = binary.LittleEndian.AppendUint16(out, ch)
					}
				}
			}
		}
	}
	return out
}

func channels16(r, g, b, a uint16, ct ColorType) []uint16 {
	switch ct {
	case LA16:
		return []uint16{r, a}
	case RGB16, RGB32F:
		return []uint16{r, g, b}
	default:
		return []uint16{r, g, b, a}
	}
}
