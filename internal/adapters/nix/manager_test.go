package nix_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deps/internal/adapters/nix"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/deps/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var _ ports.PackageManager = (*nix.Manager)(nil)

var nodejs = domain.ResolvedDependency{
	Name:             "nodejs",
	RequestedVersion: "20",
	ResolvedVersion:  "20.11.0",
	CommitReference:  "abc123",
	ArtifactID:       "nodejs_20",
}

// fakeNix writes a stand-in nix executable that records its arguments to calls.log.
func fakeNix(t *testing.T, installBody, listBody string) (binary, calls string) {
	t.Helper()
	dir := t.TempDir()
	calls = filepath.Join(dir, "calls.log")
	binary = filepath.Join(dir, "nix")
	script := `#!/bin/sh
echo "$@" >> "` + calls + `"
case "$2" in
install)
` + installBody + `
;;
list)
` + listBody + `
;;
esac
`
	//nolint:gosec // test script must be executable
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary, calls
}

func newManager(t *testing.T, binary string) (*nix.Manager, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	stateDir := filepath.Join(t.TempDir(), "state")
	return nix.NewManager(&domain.Settings{
		StateDir:    stateDir,
		NixBinary:   binary,
		NixpkgsRepo: "github:NixOS/nixpkgs",
	}, mockLogger), stateDir
}

func TestManager_FlakeRef(t *testing.T) {
	m, _ := newManager(t, "nix")
	assert.Equal(t, "github:NixOS/nixpkgs/abc123#nodejs_20", m.FlakeRef(nodejs))
}

func TestManager_Install(t *testing.T) {
	binary, calls := fakeNix(t,
		"exit 0",
		`echo '{"elements":[{"attrPath":"legacyPackages.x86_64-linux.nodejs_20","storePaths":["/nix/store/bbb-nodejs-20.11.0"]}]}'`,
	)
	m, stateDir := newManager(t, binary)

	location, err := m.Install(context.Background(), "0123456789abcdef", nodejs)
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/bbb-nodejs-20.11.0", location)

	profile := domain.ProfilePath(stateDir, "0123456789abcdef")
	assert.DirExists(t, filepath.Dir(profile))

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "profile install --profile "+profile+" github:NixOS/nixpkgs/abc123#nodejs_20", lines[0])
	assert.Equal(t, "profile list --profile "+profile+" --json", lines[1])
}

func TestManager_Install_Failure(t *testing.T) {
	binary, calls := fakeNix(t,
		"echo \"error: attribute 'nodejs_20' missing\" >&2; exit 1",
		"exit 0",
	)
	m, _ := newManager(t, binary)

	_, err := m.Install(context.Background(), "scope", nodejs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Contains(t, err.Error(), "attribute 'nodejs_20' missing")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "nodejs", zErr.Metadata()["package"])

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "profile list", "listing must not run after a failed install")
}

func TestManager_Install_ListingUnavailable(t *testing.T) {
	binary, _ := fakeNix(t, "exit 0", "exit 3")
	m, _ := newManager(t, binary)

	location, err := m.Install(context.Background(), "scope", nodejs)
	require.NoError(t, err)
	assert.Empty(t, location)
}

func TestManager_Install_MissingBinary(t *testing.T) {
	m, _ := newManager(t, filepath.Join(t.TempDir(), "no-such-nix"))

	_, err := m.Install(context.Background(), "scope", nodejs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestManager_Install_MirrorsToVertex(t *testing.T) {
	binary, _ := fakeNix(t, "echo copying path >&2; exit 0", `echo '{"elements":[]}'`)
	m, _ := newManager(t, binary)

	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)
	var stderr strings.Builder
	vertex.EXPECT().Stdout().Return(&strings.Builder{})
	vertex.EXPECT().Stderr().Return(&stderr)

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	_, err := m.Install(ctx, "scope", nodejs)
	require.NoError(t, err)
	assert.Equal(t, "copying path\n", stderr.String())
}

func TestManager_Install_ListingWarningOnVertex(t *testing.T) {
	binary, _ := fakeNix(t, "exit 0", "exit 3")
	m, _ := newManager(t, binary)

	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(&strings.Builder{})
	vertex.EXPECT().Stderr().Return(&strings.Builder{})
	vertex.EXPECT().Log(domain.LogLevelWarn, gomock.Any()).Do(func(_ domain.LogLevel, msg string) {
		assert.Contains(t, msg, "could not list profile for nodejs")
	})

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	location, err := m.Install(ctx, "scope", nodejs)
	require.NoError(t, err)
	assert.Empty(t, location)
}
