package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"palcfg/internal/config/cfgfile"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Store is the ordered set of entries for one profile. Names are looked up
// case-insensitively; the insertion order is the order entries are written.
type Store struct {
	entries map[string]*Entry
	order   []string
	eol     string

	fs  afero.Fs
	log logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets the filesystem used by Load and Save. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

// WithLogger sets the logger used to report corrections and read failures.
// By default nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*Entry),
		fs:      afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.log = discard
	}
	return s
}

func key(name string) string {
	return strings.ToLower(name)
}

// AddEntry appends a new entry. Calls must follow the profile's field order.
func (s *Store) AddEntry(name, format, def string) error {
	k := key(name)
	if _, exists := s.entries[k]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}
	e, err := NewEntry(name, format, def)
	if err != nil {
		return err
	}
	s.entries[k] = e
	s.order = append(s.order, k)
	return nil
}

// HasEntry reports whether name is part of the store.
func (s *Store) HasEntry(name string) bool {
	_, ok := s.entries[key(name)]
	return ok
}

// Entry returns the entry called name.
func (s *Store) Entry(name string) (*Entry, error) {
	e, ok := s.entries[key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, name)
	}
	return e, nil
}

// Entries returns all entries in file order.
func (s *Store) Entries() []*Entry {
	return lo.Map(s.order, func(k string, _ int) *Entry { return s.entries[k] })
}

// Names returns the original-case names in file order.
func (s *Store) Names() []string {
	return lo.Map(s.order, func(k string, _ int) string { return s.entries[k].Name() })
}

// LineEnding returns the terminator detected by the last Load, or "".
func (s *Store) LineEnding() string {
	return s.eol
}

// EntryFormat returns the format specification of name.
func (s *Store) EntryFormat(name string) (string, error) {
	e, err := s.Entry(name)
	if err != nil {
		return "", err
	}
	return e.Format(), nil
}

// EntryName returns the original-case name of name.
func (s *Store) EntryName(name string) (string, error) {
	e, err := s.Entry(name)
	if err != nil {
		return "", err
	}
	return e.Name(), nil
}

// EntryValue returns the current value of name.
func (s *Store) EntryValue(name string) (string, error) {
	e, err := s.Entry(name)
	if err != nil {
		return "", err
	}
	return e.Value(), nil
}

// EntryValueAsIndex returns the current value of name as a domain index.
func (s *Store) EntryValueAsIndex(name string) (int, error) {
	e, err := s.Entry(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsIndex()
}

// SetEntryValue strictly sets the current value of name.
func (s *Store) SetEntryValue(name, value string) error {
	e, err := s.Entry(name)
	if err != nil {
		return err
	}
	return e.SetValue(value)
}

// SetEntryIndexAsValue sets the current value of name from a domain index.
func (s *Store) SetEntryIndexAsValue(name string, index int) error {
	e, err := s.Entry(name)
	if err != nil {
		return err
	}
	return e.SetIndexAsValue(index)
}

// RestoreEntryDefault sets the current value of name to its default.
func (s *Store) RestoreEntryDefault(name string) error {
	e, err := s.Entry(name)
	if err != nil {
		return err
	}
	e.RestoreDefault()
	return nil
}

// RestoreEntryFileValue sets the current value of name to its file value.
func (s *Store) RestoreEntryFileValue(name string) error {
	e, err := s.Entry(name)
	if err != nil {
		return err
	}
	e.RestoreFileValue()
	return nil
}

// AnyChanged reports whether any entry has an unsaved edit.
func (s *Store) AnyChanged() bool {
	return lo.SomeBy(lo.Values(s.entries), func(e *Entry) bool { return e.IsChanged() })
}

// ResetAll resets every entry's file and current value to its default.
func (s *Store) ResetAll() {
	for _, e := range s.entries {
		e.ResetValue()
	}
}

// RestoreAllDefaults sets every current value to its default, keeping file values.
func (s *Store) RestoreAllDefaults() {
	for _, e := range s.entries {
		e.RestoreDefault()
	}
}

// RestoreAllFileValues discards every pending edit.
func (s *Store) RestoreAllFileValues() {
	for _, e := range s.entries {
		e.RestoreFileValue()
	}
}

// Load resets the store and reads path. A file that cannot be read leaves
// every entry at its default. Unknown keys, comments and malformed lines are
// ignored, and out-of-domain values are corrected rather than rejected.
func (s *Store) Load(path string) {
	s.ResetAll()
	s.eol = ""

	log := s.log.WithField("path", path)
	doc, err := cfgfile.Read(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("config file not found, using defaults")
		} else {
			log.WithError(err).Warn("cannot read config file, using defaults")
		}
		return
	}

	for _, line := range doc.Lines {
		e, ok := s.entries[key(line.Key)]
		if !ok {
			log.WithField("key", line.Key).Debug("ignoring unknown key")
			continue
		}
		e.LoadFileValue(line.Value)
		if e.Value() != line.Value {
			log.WithFields(logrus.Fields{
				"key":       e.Name(),
				"value":     line.Value,
				"corrected": e.Value(),
			}).Debug("corrected out-of-domain value")
		}
	}
	s.eol = doc.EOL
}

// Save writes every entry with a non-empty value to path in store order,
// using the line ending found by the last Load or "\n". File values catch up
// with current values once the write succeeds.
func (s *Store) Save(path string) error {
	entries := s.Entries()
	pairs := make([]cfgfile.Pair, 0, len(entries))
	for _, e := range entries {
		if e.Value() == "" {
			continue
		}
		pairs = append(pairs, cfgfile.Pair{Name: e.Name(), Value: e.Value()})
	}

	if err := cfgfile.Write(s.fs, path, pairs, s.eol); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIOFailure, path, err)
	}

	for _, e := range entries {
		e.SaveFileValue()
	}
	s.log.WithFields(logrus.Fields{"path": path, "entries": len(pairs)}).Debug("saved config file")
	return nil
}
