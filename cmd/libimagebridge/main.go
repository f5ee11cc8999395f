// Command libimagebridge builds the C shared library of the bridge.
//
//	go build -buildmode=c-shared -o libimagebridge.so ./cmd/libimagebridge
//
// Every iterator crosses the boundary as a RawIterator, every image as a DynamicImage pointer.
// Items the bridge produces itself are allocated with malloc and released with iter_item_free.
// Strings and byte buffers returned by the library are released with imagebridge_free.
//
// Misuse, such as advancing a consumed RawIterator, is logged and aborts the process.
package main

/*
#include "bridge.h"
*/
import "C"

import (
	"context"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/imagebridge/pkg/opaque"
)

func init() {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn(context.Background(), "invalid imagebridge configuration, using defaults", logging.ErrField(err))
		cfg = DefaultConfig()
	}
	cfg.Apply()
	opaque.Use(mallocAllocator{})
}

func main() {}
