package domain

// Settings holds process-wide configuration.
type Settings struct {
	// GlobalDir is the directory of the global scope.
	GlobalDir string `mapstructure:"-"`

	// StateDir holds per-scope installation profiles.
	StateDir string `mapstructure:"state_dir"`

	// IndexPath replaces the bundled version index when set.
	IndexPath string `mapstructure:"index_path"`

	// NixBinary is the nix executable used for installs.
	NixBinary string `mapstructure:"nix_binary"`

	// NixpkgsRepo is the flake reference prefix of the package set, e.g. "github:NixOS/nixpkgs".
	NixpkgsRepo string `mapstructure:"nixpkgs_repo"`

	// LogLevel is the minimum level of log output.
	LogLevel string `mapstructure:"log_level"`
}
