package domain

import (
	"path/filepath"
	"strings"
)

// BinPaths returns "<installLocation>/bin" for every installed dependency, in lockfile order.
// Dependencies without an install location are skipped.
func BinPaths(l *Lockfile) []string {
	if l == nil {
		return nil
	}
	var paths []string
	for _, d := range l.Resolved.All() {
		if d.InstallLocation == "" {
			continue
		}
		paths = append(paths, filepath.Join(d.InstallLocation, "bin"))
	}
	return paths
}

// MergeBinPaths orders local paths ahead of global paths.
func MergeBinPaths(global, local []string) []string {
	merged := make([]string, 0, len(global)+len(local))
	merged = append(merged, local...)
	return append(merged, global...)
}

// ExportLine renders paths as a shell export of PATH, or "" when there are none.
func ExportLine(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return `export PATH="` + strings.Join(paths, ":") + `:$PATH"`
}
