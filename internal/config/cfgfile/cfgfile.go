// Package cfgfile reads and writes the launcher's flat configuration file.
//
// The file holds one Name=Value pair per line. Lines starting with '#' are
// comments. There is no quoting, escaping or sectioning. The line terminator
// found on read is reported so that a later write can reproduce it exactly.
package cfgfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Line terminators recognized on read.
const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
)

// DefaultEOL is used on write when no single convention was detected.
const DefaultEOL = LF

// Line is one Name=Value pair as found in the file, both sides trimmed.
type Line struct {
	Key   string
	Value string
}

// Document is the parsed content of a configuration file.
type Document struct {
	Lines []Line
	// EOL is the single line terminator used throughout the file, or ""
	// when the file had no terminators or mixed them.
	EOL string
}

// Pair is one Name=Value line to write.
type Pair struct {
	Name  string
	Value string
}

// Read loads and parses path from fs.
func Read(fs afero.Fs, path string) (Document, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Document{}, err
	}
	return Parse(raw), nil
}

// Parse splits raw into key/value lines. Comments, blank lines and lines
// without '=' are dropped.
func Parse(raw []byte) Document {
	doc := Document{EOL: DetectEOL(raw)}
	for _, orig := range SplitLines(raw) {
		line := strings.Trim(orig, " \r\n")
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		doc.Lines = append(doc.Lines, Line{
			Key:   strings.Trim(key, " "),
			Value: strings.Trim(value, " "),
		})
	}
	return doc
}

// SplitLines splits raw on "\r\n", "\r" or "\n". The terminators are not
// included and a trailing terminator does not produce an empty final line.
func SplitLines(raw []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\n':
			lines = append(lines, string(raw[start:i]))
			start = i + 1
		case '\r':
			lines = append(lines, string(raw[start:i]))
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		lines = append(lines, string(raw[start:]))
	}
	return lines
}

// DetectEOL returns the line terminator used in raw when exactly one kind
// appears, and "" when there is none or more than one kind.
func DetectEOL(raw []byte) string {
	var seen []string
	note := func(eol string) {
		for _, s := range seen {
			if s == eol {
				return
			}
		}
		seen = append(seen, eol)
	}

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\n':
			note(LF)
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				note(CRLF)
				i++
			} else {
				note(CR)
			}
		}
	}

	if len(seen) != 1 {
		return ""
	}
	return seen[0]
}

// Encode renders pairs as Name=Value lines, each followed by eol.
// An empty eol means DefaultEOL.
func Encode(pairs []Pair, eol string) []byte {
	if eol == "" {
		eol = DefaultEOL
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
		b.WriteString(eol)
	}
	return []byte(b.String())
}

// Write encodes pairs and writes them over path in place. The file is opened
// once and truncated, so a symlinked path updates the link's target and only
// the file itself needs to be writable.
func Write(fs afero.Fs, path string, pairs []Pair, eol string) (err error) {
	perm := os.FileMode(0644)
	if info, statErr := fs.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = info.Mode().Perm()
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = f.Write(Encode(pairs, eol))
	return err
}
