// Package i18n checks translation files against the reference language.
package i18n

import (
	"encoding/json"
	"fmt"
	"sort"

	"flowerytools/internal/fsutil"
)

// KeySet is the set of top-level keys of one translation file. Keys are
// compared exactly, case included.
type KeySet map[string]struct{}

// NewKeySet builds a set from keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// LoadKeys reads a JSON object and returns its top-level keys. A leading
// byte-order mark is ignored.
func LoadKeys(path string) (KeySet, error) {
	data, err := fsutil.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return ParseKeys(data)
}

// ParseKeys returns the top-level keys of a JSON object document.
func ParseKeys(data []byte) (KeySet, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("invalid JSON: document is not an object")
	}
	keys := make(KeySet, len(doc))
	for k := range doc {
		keys[k] = struct{}{}
	}
	return keys, nil
}

// Minus returns the keys of s absent from other, sorted.
func (s KeySet) Minus(other KeySet) []string {
	var out []string
	for k := range s {
		if _, ok := other[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Sorted returns every key in order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
