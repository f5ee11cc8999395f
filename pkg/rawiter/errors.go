package rawiter

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	ErrNullHandle    errorkit.Error = "handle is null"
	ErrSelfReference errorkit.Error = "handle cannot be combined with itself"
	ErrBorrowed      errorkit.Error = "handle is borrowed"
	ErrZeroStep      errorkit.Error = "step must be greater than zero"
	ErrNilItem       errorkit.Error = "map function returned no item"
	ErrNotPeekable   errorkit.Error = "handle is not peekable"
	ErrNilFunc       errorkit.Error = "callback function is nil"
)

func violation(op string, err errorkit.Error) {
	logger.Error(context.Background(), "raw iterator contract violation",
		logging.Field("operation", op),
		logging.ErrField(err))
	panic(err)
}
