package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Declaration is one dependency request from a declaration file.
type Declaration struct {
	// Name is the package name as it appears in the version index (e.g. "nodejs").
	Name string

	// VersionSpecifier is the requested version expression (e.g. "20", "^1.6", ">=3.10").
	VersionSpecifier string

	// Line is the 1-based line number in the declaration file.
	Line int
}

// String returns the declaration in file syntax.
func (d Declaration) String() string {
	return d.Name + " " + d.VersionSpecifier
}

// ParseDeclarations parses declaration file text into declarations in document order.
// Blank lines and lines starting with '#' are skipped.
func ParseDeclarations(text string) ([]Declaration, error) {
	var decls []Declaration
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, spec, ok := strings.Cut(line, " ")
		spec = strings.TrimSpace(spec)
		if !ok || name == "" || spec == "" {
			err := zerr.Wrap(ErrInvalidDeclaration, fmt.Sprintf("invalid dependency format at line %d: %q", i+1, line))
			err = zerr.With(err, "line", i+1)
			return nil, zerr.With(err, "text", line)
		}

		decls = append(decls, Declaration{
			Name:             name,
			VersionSpecifier: spec,
			Line:             i + 1,
		})
	}
	return decls, nil
}
