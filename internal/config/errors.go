package config

import "errors"

var (
	// ErrInvalidFormat is returned when a format specification cannot be
	// parsed. It indicates a broken profile definition, never bad user input.
	ErrInvalidFormat = errors.New("invalid format specification")

	// ErrUnsupportedOperation is returned when index access is attempted on a
	// free text entry.
	ErrUnsupportedOperation = errors.New("operation not supported for free text entry")

	// ErrIndexOutOfRange is returned by SetIndexAsValue when the index is
	// outside the entry's domain.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidValue is returned by SetValue when the candidate is not
	// already a canonical value of the entry's domain.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownEntry is returned when looking up a name that is not part of
	// the profile.
	ErrUnknownEntry = errors.New("unknown entry")

	// ErrDuplicateEntry is returned when a profile registers the same name twice.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrUnknownProfile is returned for an unsupported platform or version.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrIOFailure is returned when the configuration file cannot be written.
	ErrIOFailure = errors.New("i/o failure")
)
