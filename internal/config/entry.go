package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Entry is one named setting. It tracks three values: the default from the
// profile, the value last loaded from or saved to disk, and the live value.
type Entry struct {
	name   string
	format Format

	defaultValue string
	fileValue    string
	current      string
}

// NewEntry creates an entry whose default, file and current values are all def.
func NewEntry(name, format, def string) (*Entry, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", name, err)
	}
	return &Entry{
		name:         name,
		format:       f,
		defaultValue: def,
		fileValue:    def,
		current:      def,
	}, nil
}

// Name returns the name in its original casing.
func (e *Entry) Name() string { return e.name }

// Format returns the format specification string.
func (e *Entry) Format() string { return e.format.String() }

// Domain returns the parsed format.
func (e *Entry) Domain() Format { return e.format }

// Kind is shorthand for Domain().Kind().
func (e *Entry) Kind() Kind { return e.format.Kind() }

// Value returns the current value.
func (e *Entry) Value() string { return e.current }

// Default returns the profile default.
func (e *Entry) Default() string { return e.defaultValue }

// FileValue returns the value last loaded or saved.
func (e *Entry) FileValue() string { return e.fileValue }

// IsChanged reports whether the current value differs from the file value.
func (e *Entry) IsChanged() bool {
	return e.current != e.fileValue
}

// ResetValue puts both the file and current value back to the default.
func (e *Entry) ResetValue() {
	e.fileValue = e.defaultValue
	e.current = e.defaultValue
}

// RestoreDefault discards the current value in favour of the default.
func (e *Entry) RestoreDefault() {
	e.current = e.defaultValue
}

// RestoreFileValue discards the current value in favour of the file value.
func (e *Entry) RestoreFileValue() {
	e.current = e.fileValue
}

// SaveFileValue makes the current value the new file baseline and returns it.
func (e *Entry) SaveFileValue() string {
	e.fileValue = e.current
	return e.current
}

// LoadFileValue records raw as the file value verbatim and sets the current
// value to its corrected form. It never fails.
func (e *Entry) LoadFileValue(raw string) {
	e.fileValue = raw
	e.current = e.Correct(raw)
}

// Correct normalizes candidate into the entry's domain without changing the
// entry. Enumerated values keep their casing when they match a member and
// fall back to the default otherwise. Integers are clamped to the range
// bounds; in-range values are returned as written. Unparseable integers fall
// back to the default. Free text is returned unchanged.
func (e *Entry) Correct(candidate string) string {
	switch f := e.format.(type) {
	case Enum:
		if _, ok := f.Index(candidate); ok {
			return candidate
		}
		return e.defaultValue
	case Range:
		n, err := strconv.ParseInt(candidate, 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return e.defaultValue
		}
		// ParseInt saturates to the int64 limits on overflow, which clamps
		// the same way an arbitrary-precision comparison would.
		switch {
		case n < f.Min:
			return strconv.FormatInt(f.Min, 10)
		case n > f.Max:
			return strconv.FormatInt(f.Max, 10)
		case err != nil:
			return strconv.FormatInt(n, 10)
		}
		return candidate
	default:
		return candidate
	}
}

// ValueAsIndex maps the current value to its zero-based position in the
// domain: the member index for enumerations, value-min for ranges.
func (e *Entry) ValueAsIndex() (int, error) {
	switch f := e.format.(type) {
	case Enum:
		i, ok := f.Index(e.current)
		if !ok {
			return 0, fmt.Errorf("entry %s: %w: %q is not a member of %s", e.name, ErrInvalidValue, e.current, f)
		}
		return i, nil
	case Range:
		n, err := strconv.ParseInt(e.current, 10, 64)
		if err != nil || !f.Contains(n) {
			return 0, fmt.Errorf("entry %s: %w: %q is not within %s", e.name, ErrInvalidValue, e.current, f)
		}
		return int(uint64(n) - uint64(f.Min)), nil
	default:
		return 0, fmt.Errorf("entry %s: %w", e.name, ErrUnsupportedOperation)
	}
}

// SetIndexAsValue is the inverse of ValueAsIndex. Enumerations take the
// member's canonical casing from the format.
func (e *Entry) SetIndexAsValue(index int) error {
	switch f := e.format.(type) {
	case Enum:
		if index < 0 || index >= len(f.members) {
			return fmt.Errorf("entry %s: %w: %d not in [0, %d)", e.name, ErrIndexOutOfRange, index, len(f.members))
		}
		e.current = f.members[index]
		return nil
	case Range:
		if index < 0 || uint64(index) > f.Span() {
			return fmt.Errorf("entry %s: %w: %d not in [0, %d]", e.name, ErrIndexOutOfRange, index, f.Span())
		}
		e.current = strconv.FormatInt(int64(uint64(f.Min)+uint64(index)), 10)
		return nil
	default:
		return fmt.Errorf("entry %s: %w", e.name, ErrUnsupportedOperation)
	}
}

// SetValue sets the current value only if candidate is already canonical,
// that is Correct(candidate) == candidate.
func (e *Entry) SetValue(candidate string) error {
	if e.Correct(candidate) != candidate {
		return fmt.Errorf("entry %s: %w: %q for format %s", e.name, ErrInvalidValue, candidate, e.format)
	}
	e.current = candidate
	return nil
}
