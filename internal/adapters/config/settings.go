package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding settings, e.g. DEPS_NIX_BINARY.
const EnvPrefix = "DEPS"

// LoadSettings reads settings from <globalDir>/config.yaml and DEPS_* environment variables.
// A missing settings file is not an error.
func LoadSettings(globalDir string) (*domain.Settings, error) {
	stateDir, err := domain.DefaultStateDir()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}

	v := viper.New()
	v.SetDefault("state_dir", stateDir)
	v.SetDefault("index_path", "")
	v.SetDefault("nix_binary", "nix")
	v.SetDefault("nixpkgs_repo", "github:NixOS/nixpkgs")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(globalDir, domain.SettingsFileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error()), "path", path)
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error()), "path", path)
	}
	settings.GlobalDir = globalDir

	return &settings, nil
}
