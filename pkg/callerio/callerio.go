// Package callerio adapts caller provided callbacks to the Go io and imagekit interfaces.
//
// A caller hands over an opaque UserData pointer together with a set of functions.
// The functions receive UserData back on every call, so the caller can keep its own state behind it.
package callerio

import (
	"context"
	"io"
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/imagebridge/pkg/imagekit"
)

const (
	ErrMissingCallback errorkit.Error = "callback is not set"
	ErrInvalidWrite    errorkit.Error = "write callback reported more bytes than it was given"
	ErrInvalidWhence   errorkit.Error = "invalid whence"
	ErrNegativeSeek    errorkit.Error = "seek to a negative position"
)

func missing(op string) {
	logger.Error(context.Background(), "caller object is incomplete",
		logging.Field("callback", op),
		logging.ErrField(ErrMissingCallback))
	panic(ErrMissingCallback)
}

// SeekType tells where a SeekFrom offset is measured from.
// The ordinal values are part of the exported C API.
type SeekType uint32

const (
	SeekFromStart SeekType = iota
	SeekFromEnd
	SeekFromCurrent
)

func (st SeekType) String() string {
	switch st {
	case SeekFromStart:
		return "start"
	case SeekFromEnd:
		return "end"
	case SeekFromCurrent:
		return "current"
	default:
		return "unknown"
	}
}

type SeekFrom struct {
	Type   SeekType
	Offset int64
}

// ToSeekFrom translates io.Seeker arguments.
func ToSeekFrom(offset int64, whence int) (SeekFrom, error) {
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return SeekFrom{}, ErrNegativeSeek.F("offset %d", offset)
		}
		return SeekFrom{Type: SeekFromStart, Offset: offset}, nil
	case io.SeekEnd:
		return SeekFrom{Type: SeekFromEnd, Offset: offset}, nil
	case io.SeekCurrent:
		return SeekFrom{Type: SeekFromCurrent, Offset: offset}, nil
	default:
		return SeekFrom{}, ErrInvalidWhence.F("%d", whence)
	}
}

type (
	WriteFunc func(userData unsafe.Pointer, p []byte) int
	FlushFunc func(userData unsafe.Pointer)
	SeekFunc  func(userData unsafe.Pointer, pos SeekFrom) uint64
)

// Writer is a caller side output stream.
type Writer struct {
	UserData unsafe.Pointer
	WriteFn  WriteFunc
	FlushFn  FlushFunc
	SeekFn   SeekFunc
}

var _ io.WriteSeeker = (*Writer)(nil)

func (w *Writer) Write(p []byte) (int, error) {
	if w.WriteFn == nil {
		missing("write")
	}
	if len(p) == 0 {
		return 0, nil
	}
	n := w.WriteFn(w.UserData, p)
	switch {
	case n < 0 || len(p) < n:
		return 0, ErrInvalidWrite.F("got %d for %d bytes", n, len(p))
	case n < len(p):
		return n, io.ErrShortWrite
	default:
		return n, nil
	}
}

func (w *Writer) Flush() error {
	if w.FlushFn == nil {
		missing("flush")
	}
	w.FlushFn(w.UserData)
	return nil
}

func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	if w.SeekFn == nil {
		missing("seek")
	}
	pos, err := ToSeekFrom(offset, whence)
	if err != nil {
		return 0, err
	}
	return int64(w.SeekFn(w.UserData, pos)), nil
}

type EncodeFunc func(userData unsafe.Pointer, buf []byte, width, height uint32, ct imagekit.ExtendedColorType)

// Encoder is a caller side image encoder.
// It receives the raw pixel layout of the image and cannot report a failure.
type Encoder struct {
	UserData unsafe.Pointer
	WriteFn  EncodeFunc
}

var _ imagekit.ImageEncoder = (*Encoder)(nil)

func (enc *Encoder) WriteImage(buf []byte, width, height uint32, ct imagekit.ExtendedColorType) error {
	if enc.WriteFn == nil {
		missing("encode")
	}
	enc.WriteFn(enc.UserData, buf, width, height, ct)
	return nil
}
