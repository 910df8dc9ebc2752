package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ScopeID derives the installation profile identity of an absolute scope directory.
// Distinct directories map to distinct profiles.
func ScopeID(absDir string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(absDir))
}
