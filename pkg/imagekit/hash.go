package imagekit

import (
	"github.com/corona10/goimagehash"
)

// PerceptualHash returns a 64 bit DCT based fingerprint.
// Visually similar images have hashes with a small Hamming distance.
func (d *DynamicImage) PerceptualHash() (uint64, error) {
	h, err := goimagehash.PerceptionHash(d.img)
	if err != nil {
		return 0, ErrUnsupported.Wrap(err)
	}
	return h.GetHash(), nil
}

// Distance is the Hamming distance between the perceptual hashes of two images.
func (d *DynamicImage) Distance(oth *DynamicImage) (int, error) {
	a, err := goimagehash.PerceptionHash(d.img)
	if err != nil {
		return 0, ErrUnsupported.Wrap(err)
	}
	b, err := goimagehash.PerceptionHash(oth.img)
	if err != nil {
		return 0, ErrUnsupported.Wrap(err)
	}
	return a.Distance(b)
}
