package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.trai.ch/zerr"
)

// LockfileFormatVersion is the only lockfile format this program reads and writes.
const LockfileFormatVersion = 1

// ResolvedDependency is a declaration pinned to a concrete version and artifact.
type ResolvedDependency struct {
	Name             string `json:"name" yaml:"name"`
	RequestedVersion string `json:"requestedVersion" yaml:"requestedVersion"`
	ResolvedVersion  string `json:"resolvedVersion" yaml:"resolvedVersion"`
	CommitReference  string `json:"commitReference" yaml:"commitReference"`
	ArtifactID       string `json:"artifactId" yaml:"artifactId"`
	// InstallLocation is empty until the dependency has been installed.
	InstallLocation string `json:"installLocation" yaml:"installLocation"`
}

// Key returns the lockfile identity key of the dependency.
func (d ResolvedDependency) Key() string {
	return d.Name + " " + d.RequestedVersion
}

// Lockfile records the resolution result for one scope.
// It is valid for a declaration text iff DeclarationContentHash equals Digest of that text.
type Lockfile struct {
	FormatVersion          int         `json:"formatVersion"`
	DeclarationContentHash string      `json:"declarationContentHash"`
	Resolved               ResolvedSet `json:"resolved"`
}

// NewLockfile builds a lockfile for the given declaration text.
func NewLockfile(declarationText string, resolved ResolvedSet) *Lockfile {
	return &Lockfile{
		FormatVersion:          LockfileFormatVersion,
		DeclarationContentHash: Digest(declarationText),
		Resolved:               resolved,
	}
}

// Matches reports whether the lockfile was written for exactly this declaration text.
func (l *Lockfile) Matches(declarationText string) bool {
	return l != nil && l.DeclarationContentHash == Digest(declarationText)
}

// Digest returns the SHA-256 hex digest of the declaration text, byte for byte.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ResolvedSet maps identity keys to resolved dependencies and remembers insertion order.
// The zero value is an empty set ready to use.
type ResolvedSet struct {
	keys    []string
	entries map[string]ResolvedDependency
}

// NewResolvedSet builds a set from deps in order.
func NewResolvedSet(deps ...ResolvedDependency) ResolvedSet {
	var s ResolvedSet
	for _, d := range deps {
		s.Put(d)
	}
	return s
}

// Put inserts or replaces the dependency under its identity key.
// A replaced entry keeps its original position.
func (s *ResolvedSet) Put(d ResolvedDependency) {
	s.set(d.Key(), d)
}

func (s *ResolvedSet) set(key string, d ResolvedDependency) {
	if s.entries == nil {
		s.entries = make(map[string]ResolvedDependency)
	}
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = d
}

// Len returns the number of entries.
func (s ResolvedSet) Len() int {
	return len(s.keys)
}

// All returns the dependencies in insertion order.
func (s ResolvedSet) All() []ResolvedDependency {
	out := make([]ResolvedDependency, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.entries[k])
	}
	return out
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (s ResolvedSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(s.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document order of its keys.
func (s *ResolvedSet) UnmarshalJSON(data []byte) error {
	*s = ResolvedSet{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return zerr.With(zerr.New("resolved: expected JSON object"), "token", fmt.Sprint(tok))
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return zerr.With(zerr.New("resolved: expected string key"), "token", fmt.Sprint(tok))
		}
		var d ResolvedDependency
		if err := dec.Decode(&d); err != nil {
			return err
		}
		s.set(key, d)
	}

	_, err = dec.Token()
	return err
}
