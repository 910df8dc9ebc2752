package config

import (
	"strings"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/zerr"
)

// InitTemplate is the content of a freshly initialized declaration file.
const InitTemplate = `# deps - list your dependencies below
# Format: name version
# Examples:
#   nodejs 20
#   python 3.11
#   ripgrep ^14
`

// AddDeclaration sets the version of name in text.
// The first line declaring name is replaced; otherwise a new line is appended.
func AddDeclaration(text, name, version string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if declares(line, name) {
			lines[i] = name + " " + version
			return strings.Join(lines, "\n")
		}
	}
	head := strings.TrimRight(text, " \t\r\n")
	if head == "" {
		return name + " " + version + "\n"
	}
	return head + "\n" + name + " " + version + "\n"
}

// RemoveDeclaration drops every line declaring name from text.
func RemoveDeclaration(text, name string) (string, error) {
	lines := strings.Split(text, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if !declares(line, name) {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return "", zerr.With(zerr.Wrap(domain.ErrDependencyNotDeclared, "package "+name+" not found in deps file"), "package", name)
	}
	return strings.Join(kept, "\n"), nil
}

func declares(line, name string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), name+" ")
}
