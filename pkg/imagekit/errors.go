package imagekit

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrDecoding          errorkit.Error = "decoding error"
	ErrEncoding          errorkit.Error = "encoding error"
	ErrDimensionMismatch errorkit.Error = "image dimensions are either too small or too large"
	ErrFailedAlready     errorkit.Error = "image stream ended due to a previous error"
	ErrMalformed         errorkit.Error = "parameter is malformed"
	ErrNoMoreData        errorkit.Error = "end of the image has been reached"
	ErrInsufficientMem   errorkit.Error = "memory limit exceeded"
	ErrLimitsUnsupported errorkit.Error = "image size exceeds limit"
	ErrDimension         errorkit.Error = "strict limits are specified but not supported by the operation"
	ErrUnsupportedColor  errorkit.Error = "color type is not supported by the codec"
	ErrUnsupportedFormat errorkit.Error = "image format is not supported"
	ErrUnsupported       errorkit.Error = "unsupported feature"
	ErrOutOfBounds       errorkit.Error = "pixel coordinates are out of bounds"
)

// ErrorType is the flat error taxonomy of the exported C API.
type ErrorType uint32

const (
	ErrorNone ErrorType = iota
	ErrorDecoding
	ErrorEncoding
	ErrorParameterDimensionMismatch
	ErrorParameterFailedAlready
	ErrorParameterMalformed
	ErrorParameterNoMoreData
	ErrorInsufficientMemory
	ErrorLimitsUnsupported
	ErrorDimension
	ErrorUnsupportedColor
	ErrorUnsupportedFormat
	ErrorUnsupportedOther
	ErrorIONotFound
	ErrorIOPermissionDenied
	ErrorIOConnectionRefused
	ErrorIOConnectionReset
	ErrorIOConnectionAborted
	ErrorIONotConnected
	ErrorIOAddrInUse
	ErrorIOAddrNotAvailable
	ErrorIOBrokenPipe
	ErrorIOAlreadyExists
	ErrorIOWouldBlock
	ErrorIOInvalidInput
	ErrorIOInvalidData
	ErrorIOTimedOut
	ErrorIOWriteZero
	ErrorIOInterrupted
	ErrorIOUnsupported
	ErrorIOUnexpectedEOF
	ErrorIOOutOfMemory
	ErrorIOOther
	ErrorUnknown
)

var errorTypeMessages = map[ErrorType]string{
	ErrorNone:                       "No error",
	ErrorDecoding:                   "Decoding error",
	ErrorEncoding:                   "Encoding error",
	ErrorParameterDimensionMismatch: "The Image's dimensions are either too small or too large",
	ErrorParameterFailedAlready:     "The end the image stream has been reached due to a previous error",
	ErrorParameterMalformed:         "A parameter is malformed",
	ErrorParameterNoMoreData:        "The end of the image has been reached",
	ErrorInsufficientMemory:         "Memory limit exceeded",
	ErrorLimitsUnsupported:          "Image size exceeds limit",
	ErrorDimension:                  "Some strict limits are specified but not supported by the operation",
	ErrorUnsupportedColor:           "The encoder or decoder for this image does not support the provided color type",
	ErrorUnsupportedFormat:          "The image format is not supported",
	ErrorUnsupportedOther:           "The requested feature is not supported",
	ErrorIONotFound:                 "Entity not found",
	ErrorIOPermissionDenied:         "Permission denied",
	ErrorIOConnectionRefused:        "Connection refused",
	ErrorIOConnectionReset:          "Connection reset",
	ErrorIOConnectionAborted:        "Connection aborted",
	ErrorIONotConnected:             "Not connected",
	ErrorIOAddrInUse:                "Address in use",
	ErrorIOAddrNotAvailable:         "Address not available",
	ErrorIOBrokenPipe:               "Broken pipe",
	ErrorIOAlreadyExists:            "Entity already exists",
	ErrorIOWouldBlock:               "Operation would block",
	ErrorIOInvalidInput:             "Invalid input parameter",
	ErrorIOInvalidData:              "Invalid data",
	ErrorIOTimedOut:                 "Timed out",
	ErrorIOWriteZero:                "Write returned zero",
	ErrorIOInterrupted:              "Operation interrupted",
	ErrorIOUnsupported:              "Unsupported I/O operation",
	ErrorIOUnexpectedEOF:            "Unexpected end of file",
	ErrorIOOutOfMemory:              "Out of memory",
	ErrorIOOther:                    "Other I/O error",
	ErrorUnknown:                    "Unknown error",
}

func (et ErrorType) String() string {
	if msg, ok := errorTypeMessages[et]; ok {
		return msg
	}
	return errorTypeMessages[ErrorUnknown]
}

var sentinelTypes = []struct {
	Err  error
	Type ErrorType
}{
	{ErrDecoding, ErrorDecoding},
	{ErrEncoding, ErrorEncoding},
	{ErrDimensionMismatch, ErrorParameterDimensionMismatch},
	{ErrFailedAlready, ErrorParameterFailedAlready},
	{ErrMalformed, ErrorParameterMalformed},
	{ErrOutOfBounds, ErrorParameterMalformed},
	{ErrNoMoreData, ErrorParameterNoMoreData},
	{ErrInsufficientMem, ErrorInsufficientMemory},
	{ErrLimitsUnsupported, ErrorLimitsUnsupported},
	{ErrDimension, ErrorDimension},
	{ErrUnsupportedColor, ErrorUnsupportedColor},
	{ErrUnsupportedFormat, ErrorUnsupportedFormat},
	{ErrUnsupported, ErrorUnsupportedOther},
	{fs.ErrNotExist, ErrorIONotFound},
	{fs.ErrPermission, ErrorIOPermissionDenied},
	{fs.ErrExist, ErrorIOAlreadyExists},
	{fs.ErrInvalid, ErrorIOInvalidInput},
	{os.ErrDeadlineExceeded, ErrorIOTimedOut},
	{io.ErrUnexpectedEOF, ErrorIOUnexpectedEOF},
	{io.ErrShortWrite, ErrorIOWriteZero},
	{io.ErrClosedPipe, ErrorIOBrokenPipe},
	{errors.ErrUnsupported, ErrorIOUnsupported},
}

// ErrorTypeOf classifies err into the ErrorType taxonomy.
// The image failure classes take precedence over the I/O ones,
// so a decoder that failed on a truncated stream reports ErrorDecoding.
func ErrorTypeOf(err error) ErrorType {
	if err == nil {
		return ErrorNone
	}
	for _, st := range sentinelTypes {
		if errors.Is(err, st.Err) {
			return st.Type
		}
	}
	if et, ok := errnoType(err); ok {
		return et
	}
	var (
		pathErr *fs.PathError
		linkErr *os.LinkError
		sysErr  *os.SyscallError
	)
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &sysErr) || errors.Is(err, io.EOF) {
		return ErrorIOOther
	}
	return ErrorUnknown
}
