// Package bib reads BibTeX bibliographies into entries the page renderer can consume.
package bib

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nickng/bibtex"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/scholarpage/scholarpage/filesystem"
)

// ErrMissingField is wrapped by errors reporting required fields an entry lacks.
var ErrMissingField = errors.New("missing field")

// Entry is a single bibliography record.
type Entry struct {
	// Key is the citation key.
	Key string
	// Type is the lower-cased entry type, e.g. "inproceedings".
	Type string
	// Fields holds every field with a lower-cased name and a brace-free value.
	Fields map[string]string
	// Authors is the parsed author field.
	Authors []Person
}

// Field returns the named field, if present and non-blank.
func (e *Entry) Field(name string) mo.Option[string] {
	v, ok := e.Fields[strings.ToLower(name)]
	if !ok || strings.TrimSpace(v) == "" {
		return mo.None[string]()
	}
	return mo.Some(v)
}

// Get returns the named field or the empty string.
func (e *Entry) Get(name string) string {
	return e.Field(name).OrEmpty()
}

// Has reports whether the named field is present and non-blank.
func (e *Entry) Has(name string) bool {
	return e.Field(name).IsPresent()
}

// Require returns an error wrapping ErrMissingField if any of names is absent.
func (e *Entry) Require(names ...string) error {
	missing := lo.Reject(names, func(name string, _ int) bool {
		return e.Has(name)
	})
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: entry %s lacks %s", ErrMissingField, e.Key, strings.Join(missing, ", "))
}

// Parse reads every entry from r, keeping their order in the source.
func Parse(r io.Reader) ([]*Entry, error) {
	parsed, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse bibtex: %w", err)
	}

	entries := make([]*Entry, 0, len(parsed.Entries))
	for _, raw := range parsed.Entries {
		entry := &Entry{
			Key:    raw.CiteName,
			Type:   strings.ToLower(raw.Type),
			Fields: make(map[string]string, len(raw.Fields)),
		}
		for name, value := range raw.Fields {
			name = strings.ToLower(strings.TrimSpace(name))
			entry.Fields[name] = clean(value.String())
			if name == "author" {
				entry.Authors = ParsePersons(value.String())
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Load parses the BibTeX file at path.
func Load(path string) ([]*Entry, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

var braces = strings.NewReplacer("{", "", "}", "")

// clean drops case-protecting braces and collapses whitespace runs.
func clean(s string) string {
	return strings.Join(strings.Fields(braces.Replace(s)), " ")
}
