// Package testutil provides fixtures for settings file tests.
package testutil

import (
	"io"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"palcfg/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileBuilder assembles the content of a settings file line by line.
type FileBuilder struct {
	lines []string
	eol   string
}

// NewFileBuilder creates a builder terminating every line with eol.
func NewFileBuilder(eol string) *FileBuilder {
	return &FileBuilder{eol: eol}
}

// Set adds a Name=Value line.
func (b *FileBuilder) Set(name, value string) *FileBuilder {
	return b.Raw(name + "=" + value)
}

// Comment adds a '#' comment line.
func (b *FileBuilder) Comment(text string) *FileBuilder {
	return b.Raw("# " + text)
}

// Raw adds line exactly as given.
func (b *FileBuilder) Raw(line string) *FileBuilder {
	b.lines = append(b.lines, line)
	return b
}

func (b *FileBuilder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, b.eol) + b.eol
}

// Write stores the content at path on fs, creating parent directories.
func (b *FileBuilder) Write(t testing.TB, fs afero.Fs, path string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// ReadFile returns the content of path on fs.
func ReadFile(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(raw)
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ValueGenerator produces candidate values for entries, mixing valid values
// with ones the entry has to correct.
type ValueGenerator struct {
	rng *rand.Rand
}

// NewValueGenerator creates a deterministic generator.
func NewValueGenerator(seed int64) *ValueGenerator {
	return &ValueGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Value returns a candidate for e.
func (g *ValueGenerator) Value(e *config.Entry) string {
	switch f := e.Domain().(type) {
	case config.Enum:
		members := f.Members()
		switch g.rng.Intn(4) {
		case 0:
			return strings.ToLower(members[g.rng.Intn(len(members))])
		case 1:
			return "bogus"
		default:
			return members[g.rng.Intn(len(members))]
		}
	case config.Range:
		switch g.rng.Intn(5) {
		case 0:
			return strconv.FormatInt(f.Min, 10) + "0000000000000000000000"
		case 1:
			return "-" + strconv.FormatUint(g.rng.Uint64(), 10)
		case 2:
			return "n/a"
		default:
			return strconv.FormatInt(f.Min+g.rng.Int63n(int64(min(f.Span(), 1<<62))+1), 10)
		}
	default:
		return "path/" + strconv.Itoa(g.rng.Intn(1000))
	}
}

// File builds a file assigning a generated value to every entry of store.
func (g *ValueGenerator) File(store *config.Store, eol string) *FileBuilder {
	b := NewFileBuilder(eol)
	for _, e := range store.Entries() {
		b.Set(e.Name(), g.Value(e))
	}
	return b
}
