// Package config models the launcher settings file: typed entries with a
// declarative value domain, and an ordered store that loads and saves them.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which domain a Format describes.
type Kind int

const (
	KindEnum Kind = iota + 1
	KindRange
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindRange:
		return "range"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Format is the parsed domain of an entry. It is implemented only by Enum,
// Range and Text.
type Format interface {
	// Kind reports which variant this is.
	Kind() Kind
	// String returns the specification the format was parsed from.
	String() string

	sealed()
}

// Enum is an ordered set of allowed tokens, compared case-insensitively.
type Enum struct {
	spec    string
	members []string
	lower   []string
}

// Range is an inclusive signed integer interval.
type Range struct {
	spec     string
	Min, Max int64
}

// Text accepts any string.
type Text struct{}

func (Enum) Kind() Kind  { return KindEnum }
func (Range) Kind() Kind { return KindRange }
func (Text) Kind() Kind  { return KindText }

func (f Enum) String() string  { return f.spec }
func (f Range) String() string { return f.spec }
func (Text) String() string    { return "*" }

func (Enum) sealed()  {}
func (Range) sealed() {}
func (Text) sealed()  {}

// Members returns the allowed tokens in their original casing.
func (f Enum) Members() []string {
	out := make([]string, len(f.members))
	copy(out, f.members)
	return out
}

// Index returns the position of value in the member list, ignoring case.
func (f Enum) Index(value string) (int, bool) {
	low := strings.ToLower(value)
	for i, m := range f.lower {
		if m == low {
			return i, true
		}
	}
	return -1, false
}

// Span returns max-min, the largest valid index of the range.
func (f Range) Span() uint64 {
	return uint64(f.Max) - uint64(f.Min)
}

// Contains reports whether n lies within the range.
func (f Range) Contains(n int64) bool {
	return n >= f.Min && n <= f.Max
}

// ParseFormat parses a format specification:
//
//	"OGG/MP3"                 enumerated set
//	"0-48000", "-5-5"         integer range, a leading '-' negates the lower bound
//	"*"                       free text
func ParseFormat(spec string) (Format, error) {
	switch {
	case strings.Contains(spec, "/"):
		members := strings.Split(spec, "/")
		lower := make([]string, len(members))
		for i, m := range members {
			lower[i] = strings.ToLower(m)
		}
		return Enum{spec: spec, members: members, lower: lower}, nil
	case strings.Contains(spec, "-"):
		return parseRange(spec)
	case spec == "*":
		return Text{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, spec)
}

func parseRange(spec string) (Range, error) {
	body, negative := strings.CutPrefix(spec, "-")
	low, high, ok := strings.Cut(body, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q has no upper bound", ErrInvalidFormat, spec)
	}
	if negative {
		low = "-" + low
	}

	minValue, err := strconv.ParseInt(low, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q lower bound: %v", ErrInvalidFormat, spec, err)
	}
	maxValue, err := strconv.ParseInt(high, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q upper bound: %v", ErrInvalidFormat, spec, err)
	}
	if minValue > maxValue {
		return Range{}, fmt.Errorf("%w: %q lower bound exceeds upper bound", ErrInvalidFormat, spec)
	}

	return Range{spec: spec, Min: minValue, Max: maxValue}, nil
}
