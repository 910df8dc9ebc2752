package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deps/internal/adapters/lockfile"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
)

var _ ports.LockfileStore = (*lockfile.Store)(nil)

func sampleSet() domain.ResolvedSet {
	return domain.NewResolvedSet(
		domain.ResolvedDependency{
			Name: "python", RequestedVersion: "3.11", ResolvedVersion: "3.11.10",
			CommitReference: "c1", ArtifactID: "python311", InstallLocation: "/nix/store/py",
		},
		domain.ResolvedDependency{
			Name: "nodejs", RequestedVersion: "20", ResolvedVersion: "20.11.0",
			CommitReference: "c2", ArtifactID: "nodejs_20", InstallLocation: "/nix/store/node",
		},
	)
}

func TestStore_ReadMissing(t *testing.T) {
	store := lockfile.NewStore()
	assert.Nil(t, store.Read(t.TempDir()))
}

func TestStore_StalenessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := lockfile.NewStore()
	text := "python 3.11\nnodejs 20\n"

	assert.True(t, store.IsStale(dir, text))

	_, err := store.Write(dir, text, sampleSet())
	require.NoError(t, err)

	assert.False(t, store.IsStale(dir, text))
	assert.True(t, store.IsStale(dir, text+" "))
	assert.True(t, store.IsStale(dir, "python 3.11\nnodejs 18\n"))
}

func TestStore_WriteThenRead(t *testing.T) {
	dir := t.TempDir()
	store := lockfile.NewStore()
	text := "python 3.11\nnodejs 20\n"

	written, err := store.Write(dir, text, sampleSet())
	require.NoError(t, err)
	assert.Equal(t, domain.LockfileFormatVersion, written.FormatVersion)
	assert.Equal(t, domain.Digest(text), written.DeclarationContentHash)

	read := store.Read(dir)
	require.NotNil(t, read)
	assert.Equal(t, written.DeclarationContentHash, read.DeclarationContentHash)
	require.Len(t, read.Resolved.All(), 2)
	assert.Equal(t, "python 3.11", read.Resolved.All()[0].Key())
	assert.Equal(t, "nodejs 20", read.Resolved.All()[1].Key())
	assert.Equal(t, sampleSet().All(), read.Resolved.All())
}

func TestStore_FileLayout(t *testing.T) {
	dir := t.TempDir()
	_, err := lockfile.NewStore().Write(dir, "nodejs 20\n", domain.NewResolvedSet(domain.ResolvedDependency{
		Name: "nodejs", RequestedVersion: "20", ResolvedVersion: "20.11.0",
		CommitReference: "c2", ArtifactID: "nodejs_20", InstallLocation: "/nix/store/node",
	}))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "deps.lock"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "lockfile_single", data)
}

func TestStore_CorruptLockfileIsAbsent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"wrong format version", `{"formatVersion": 2, "declarationContentHash": "abc", "resolved": {}}`},
		{"missing hash", `{"formatVersion": 1, "resolved": {}}`},
		{"resolved not an object", `{"formatVersion": 1, "declarationContentHash": "abc", "resolved": []}`},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "deps.lock"), []byte(tt.content), domain.FilePerm))

			store := lockfile.NewStore()
			assert.Nil(t, store.Read(dir))
			assert.True(t, store.IsStale(dir, "anything"))
		})
	}
}

func TestStore_WriteReplacesWholeFile(t *testing.T) {
	dir := t.TempDir()
	store := lockfile.NewStore()

	_, err := store.Write(dir, "a", sampleSet())
	require.NoError(t, err)
	_, err = store.Write(dir, "b", domain.ResolvedSet{})
	require.NoError(t, err)

	read := store.Read(dir)
	require.NotNil(t, read)
	assert.Equal(t, 0, read.Resolved.Len())
	assert.True(t, read.Matches("b"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files may remain")
	assert.Equal(t, "deps.lock", entries[0].Name())
}

func TestStore_WriteFailure(t *testing.T) {
	parent := t.TempDir()
	scope := filepath.Join(parent, "scope")
	require.NoError(t, os.WriteFile(scope, []byte("not a directory"), domain.FilePerm))

	_, err := lockfile.NewStore().Write(scope, "x", domain.ResolvedSet{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockfileWriteFailed)
}
