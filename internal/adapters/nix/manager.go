// Package nix installs resolved dependencies into per-scope nix profiles.
package nix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.PackageManager using the nix CLI.
type Manager struct {
	nixBinary   string
	nixpkgsRepo string
	stateDir    string
	logger      ports.Logger
}

// NewManager creates a Manager from the process settings.
func NewManager(settings *domain.Settings, logger ports.Logger) *Manager {
	return &Manager{
		nixBinary:   settings.NixBinary,
		nixpkgsRepo: settings.NixpkgsRepo,
		stateDir:    settings.StateDir,
		logger:      logger,
	}
}

// FlakeRef returns the flake reference installed for dep.
func (m *Manager) FlakeRef(dep domain.ResolvedDependency) string {
	return fmt.Sprintf("%s/%s#%s", m.nixpkgsRepo, dep.CommitReference, dep.ArtifactID)
}

// Install adds dep to the profile of scopeID and returns its store path.
// The returned path is empty when the profile listing does not mention the artifact.
func (m *Manager) Install(ctx context.Context, scopeID string, dep domain.ResolvedDependency) (string, error) {
	profile := domain.ProfilePath(m.stateDir, scopeID)
	if err := os.MkdirAll(filepath.Dir(profile), domain.DirPerm); err != nil {
		return "", m.installError(dep, err.Error())
	}

	var stderr bytes.Buffer
	//nolint:gosec // arguments come from the version index
	cmd := exec.CommandContext(ctx, m.nixBinary, "profile", "install", "--profile", profile, m.FlakeRef(dep))
	cmd.Stderr = &stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = v.Stdout()
		cmd.Stderr = io.MultiWriter(&stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return "", zerr.With(m.installError(dep, diag), "stderr", diag)
	}

	return m.storePath(ctx, profile, dep), nil
}

func (m *Manager) installError(dep domain.ResolvedDependency, diag string) error {
	err := zerr.Wrap(domain.ErrInstallFailed, fmt.Sprintf("failed to install %s: %s", dep.Name, diag))
	err = zerr.With(err, "package", dep.Name)
	err = zerr.With(err, "commit", dep.CommitReference)
	return zerr.With(err, "attr", dep.ArtifactID)
}

func (m *Manager) storePath(ctx context.Context, profile string, dep domain.ResolvedDependency) string {
	//nolint:gosec // arguments come from settings
	output, err := exec.CommandContext(ctx, m.nixBinary, "profile", "list", "--profile", profile, "--json").Output()
	if err != nil {
		m.warn(ctx, fmt.Sprintf("could not list profile for %s: %v", dep.Name, err))
		return ""
	}

	path, err := parseProfileList(output, dep.ArtifactID)
	if err != nil {
		m.warn(ctx, fmt.Sprintf("could not read profile listing for %s: %v", dep.Name, err))
		return ""
	}
	return path
}

// warn logs msg and records it on the vertex carried by ctx.
func (m *Manager) warn(ctx context.Context, msg string) {
	m.logger.Warn(msg)
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelWarn, msg)
	}
}

type profileElement struct {
	AttrPath   string   `json:"attrPath"`
	StorePaths []string `json:"storePaths"`
}

type profileList struct {
	Elements json.RawMessage `json:"elements"`
}

// parseProfileList returns the first store path of the first element naming attr.
// Older nix prints elements as an array, newer nix as an object keyed by element name.
func parseProfileList(output []byte, attr string) (string, error) {
	var list profileList
	if err := json.Unmarshal(output, &list); err != nil {
		return "", zerr.Wrap(err, "failed to parse nix profile list JSON output")
	}

	elements, err := decodeElements(list.Elements)
	if err != nil {
		return "", err
	}

	for _, el := range elements {
		first := ""
		if len(el.StorePaths) > 0 {
			first = el.StorePaths[0]
		}
		if strings.Contains(el.AttrPath, attr) || (first != "" && strings.Contains(first, attr)) {
			return first, nil
		}
	}
	return "", nil
}

func decodeElements(raw json.RawMessage) ([]profileElement, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var elements []profileElement
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil, zerr.Wrap(err, "invalid profile elements")
		}
		return elements, nil
	case '{':
		var byName map[string]profileElement
		if err := json.Unmarshal(trimmed, &byName); err != nil {
			return nil, zerr.Wrap(err, "invalid profile elements")
		}
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		elements := make([]profileElement, 0, len(names))
		for _, name := range names {
			elements = append(elements, byName[name])
		}
		return elements, nil
	default:
		return nil, zerr.New("profile elements must be an array or an object")
	}
}
