// Package index provides the version index bundled with the binary.
package index

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed data/index.json
var bundled []byte

// Index implements ports.VersionIndex over an in-memory catalog.
type Index struct {
	packages map[string]versionList
}

type document struct {
	Packages map[string]versionList `json:"packages"`
}

// versionList keeps the versions of one package in document order.
type versionList struct {
	order   []string
	entries map[string]domain.IndexEntry
}

func (l *versionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return zerr.New("expected a JSON object of versions")
	}

	l.entries = make(map[string]domain.IndexEntry)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		version, ok := tok.(string)
		if !ok {
			return zerr.New("expected a version string key")
		}
		var entry domain.IndexEntry
		if err := dec.Decode(&entry); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid version entry"), "version", version)
		}
		if _, dup := l.entries[version]; !dup {
			l.order = append(l.order, version)
		}
		l.entries[version] = entry
	}

	_, err = dec.Token()
	return err
}

// Bundled decodes the index embedded in the binary.
func Bundled() (*Index, error) {
	return Parse(bundled)
}

// LoadFile decodes an index file from disk.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrIndexLoadFailed, err.Error()), "path", path)
	}
	idx, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return idx, nil
}

// Parse decodes an index document.
func Parse(data []byte) (*Index, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrIndexLoadFailed, err.Error())
	}
	if doc.Packages == nil {
		return nil, zerr.Wrap(domain.ErrIndexLoadFailed, "index has no packages")
	}
	return &Index{packages: doc.Packages}, nil
}

// Versions returns the versions of a package in index order, or nil if the package is unknown.
func (i *Index) Versions(name string) []string {
	pkg, ok := i.packages[name]
	if !ok {
		return nil
	}
	return append([]string(nil), pkg.order...)
}

// Entry returns the artifact reference of a package version.
func (i *Index) Entry(name, version string) (domain.IndexEntry, bool) {
	pkg, ok := i.packages[name]
	if !ok {
		return domain.IndexEntry{}, false
	}
	entry, ok := pkg.entries[version]
	return entry, ok
}
