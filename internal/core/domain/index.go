package domain

// IndexEntry identifies what to install for one package version.
type IndexEntry struct {
	// Commit is the nixpkgs commit that carries this version.
	Commit string `json:"commit"`

	// Attr is the nixpkgs attribute to build from that commit.
	Attr string `json:"attr"`
}
