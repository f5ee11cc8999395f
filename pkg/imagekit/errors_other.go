//go:build !unix

package imagekit

func errnoType(error) (ErrorType, bool) { return 0, false }
