package services

import (
	"github.com/pkg/errors"
)

// Failure kinds. Every error returned by Service wraps exactly one of them.
var (
	ErrValidation = errors.New("invalid argument")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// KindOf classifies err. Errors that wrap none of the sentinels are
// internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func notFound(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func conflict(format string, args ...any) error {
	return errors.Wrapf(ErrConflict, format, args...)
}
