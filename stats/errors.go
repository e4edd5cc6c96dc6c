package stats

import "github.com/pkg/errors"

var (
	// ErrNilInput is returned when a required sequence is nil.
	// A nil slice is absent; a non-nil slice of length zero is present but empty.
	ErrNilInput = errors.New("stats: nil input")

	// ErrInvalidArgument is returned when a sequence has an unusable length.
	ErrInvalidArgument = errors.New("stats: invalid argument")
)
