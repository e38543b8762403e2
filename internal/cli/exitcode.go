package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bjaus/prettytable"
	"github.com/bjaus/prettytable/internal/config"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// usageError marks bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

var userErrors = []error{
	prettytable.ErrMalformedInput,
	prettytable.ErrShapeMismatch,
	prettytable.ErrInvalidOption,
	prettytable.ErrInvalidBorderStyle,
	prettytable.ErrUnknownColumn,
	prettytable.ErrDuplicateColumn,
	prettytable.ErrUnsupportedFormat,
	prettytable.ErrInvalidTemplate,
	config.ErrInvalidConfig,
}

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		return ExitUser
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return ExitUser
		}
	}
	return ExitSystem
}
