//go:build unix

package imagekit

import (
	"errors"
	"syscall"
)

var errnoTypes = map[syscall.Errno]ErrorType{
	syscall.ENOENT:        ErrorIONotFound,
	syscall.EACCES:        ErrorIOPermissionDenied,
	syscall.EPERM:         ErrorIOPermissionDenied,
	syscall.ECONNREFUSED:  ErrorIOConnectionRefused,
	syscall.ECONNRESET:    ErrorIOConnectionReset,
	syscall.ECONNABORTED:  ErrorIOConnectionAborted,
	syscall.ENOTCONN:      ErrorIONotConnected,
	syscall.EADDRINUSE:    ErrorIOAddrInUse,
	syscall.EADDRNOTAVAIL: ErrorIOAddrNotAvailable,
	syscall.EPIPE:         ErrorIOBrokenPipe,
	syscall.EEXIST:        ErrorIOAlreadyExists,
	syscall.EAGAIN:        ErrorIOWouldBlock,
	syscall.EINVAL:        ErrorIOInvalidInput,
	syscall.ETIMEDOUT:     ErrorIOTimedOut,
	syscall.EINTR:         ErrorIOInterrupted,
	syscall.ENOSYS:        ErrorIOUnsupported,
	syscall.ENOMEM:        ErrorIOOutOfMemory,
}

func errnoType(err error) (ErrorType, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return 0, false
	}
	et, ok := errnoTypes[errno]
	if !ok {
		return ErrorIOOther, true
	}
	return et, true
}
