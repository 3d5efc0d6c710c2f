// Package fs provides filesystem sources and the JSON Lines page writer.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/orsextract"
)

// ListSources returns the entries of dir whose names begin with prefix.
// The listing is not recursive and entries are not filtered by type or
// extension. Entries come back sorted by name.
func ListSources(dir, prefix string) ([]orsextract.Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sources []orsextract.Source
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		sources = append(sources, orsextract.Source{
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}
	return sources, nil
}

// ReadSource returns the raw bytes of a source.
func ReadSource(src orsextract.Source) ([]byte, error) {
	return os.ReadFile(src.Path)
}
