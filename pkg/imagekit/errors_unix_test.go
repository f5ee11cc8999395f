//go:build unix

package imagekit_test

import (
	"os"
	"syscall"
	"testing"

	"go.llib.dev/imagebridge/pkg/imagekit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestErrorTypeOf_errno(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("errno values map to their I/O type", func(t *testcase.T) {
		assert.Equal(t, imagekit.ErrorIOConnectionRefused, imagekit.ErrorTypeOf(os.NewSyscallError("connect", syscall.ECONNREFUSED)))
		assert.Equal(t, imagekit.ErrorIOBrokenPipe, imagekit.ErrorTypeOf(syscall.EPIPE))
		assert.Equal(t, imagekit.ErrorIOInterrupted, imagekit.ErrorTypeOf(syscall.EINTR))
	})

	s.Test("unmapped errno values are other I/O errors", func(t *testcase.T) {
		assert.Equal(t, imagekit.ErrorIOOther, imagekit.ErrorTypeOf(syscall.EXDEV))
	})
}
