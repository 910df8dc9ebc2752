package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deps/internal/adapters/config"
	"go.trai.ch/deps/internal/adapters/index"
	"go.trai.ch/deps/internal/adapters/lockfile"
	"go.trai.ch/deps/internal/adapters/telemetry/progrock"
	"go.trai.ch/deps/internal/app"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports/mocks"
	"go.trai.ch/deps/internal/engine/installer"
	"go.trai.ch/deps/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	app       *app.App
	packages  *mocks.MockPackageManager
	executor  *mocks.MockExecutor
	globalDir string
	cwd       string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	idx, err := index.Bundled()
	require.NoError(t, err)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	env := &testEnv{
		packages:  mocks.NewMockPackageManager(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		globalDir: filepath.Join(t.TempDir(), "global"),
		cwd:       filepath.Join(t.TempDir(), "project"),
	}
	require.NoError(t, os.MkdirAll(env.cwd, domain.DirPerm))

	declarations := config.NewDeclarationStore()
	inst := installer.New(declarations, resolver.New(idx), lockfile.NewStore(), env.packages, log, progrock.New())
	env.app = app.New(declarations, inst, env.executor, log, env.globalDir).WithWorkingDir(env.cwd)
	return env
}

// installToStore answers installs with a store path derived from the artifact.
func (e *testEnv) installToStore() *gomock.Call {
	return e.packages.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dep domain.ResolvedDependency) (string, error) {
			return "/nix/store/" + dep.ArtifactID + "-" + dep.ResolvedVersion, nil
		})
}

func writeDeps(t *testing.T, dir, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(domain.DeclarationPath(dir), []byte(text), domain.FilePerm))
}

func readDeps(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(domain.DeclarationPath(dir))
	require.NoError(t, err)
	return string(data)
}

func TestApp_ScopeDir(t *testing.T) {
	env := newTestEnv(t)

	dir, err := env.app.ScopeDir(false)
	require.NoError(t, err)
	assert.Equal(t, env.cwd, dir)

	dir, err = env.app.ScopeDir(true)
	require.NoError(t, err)
	assert.Equal(t, env.globalDir, dir)
}

func TestApp_Init(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.app.Init(env.cwd))
	assert.Equal(t, config.InitTemplate, readDeps(t, env.cwd))

	err := env.app.Init(env.cwd)
	assert.ErrorIs(t, err, domain.ErrDeclarationFileExists)
}

func TestApp_Install_NoDeclarationFile(t *testing.T) {
	env := newTestEnv(t)

	err := env.app.Install(context.Background(), env.cwd)
	assert.ErrorIs(t, err, domain.ErrDeclarationFileNotFound)
}

func TestApp_Install_TemplateDeclaresNothing(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.app.Init(env.cwd))

	require.NoError(t, env.app.Install(context.Background(), env.cwd))
	assert.NoFileExists(t, domain.LockfilePath(env.cwd))
}

func TestApp_Install_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "nodejs 20\n")
	env.installToStore().Times(1)

	require.NoError(t, env.app.Install(context.Background(), env.cwd))
	require.NoError(t, env.app.Install(context.Background(), env.cwd))
	assert.FileExists(t, domain.LockfilePath(env.cwd))
}

func TestApp_Install_UnknownPackage(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "nodejss 20\n")

	err := env.app.Install(context.Background(), env.cwd)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	assert.NoFileExists(t, domain.LockfilePath(env.cwd))
}

func TestApp_Add(t *testing.T) {
	env := newTestEnv(t)
	env.installToStore().Times(2)

	require.NoError(t, env.app.Add(context.Background(), env.cwd, "jq", "1"))
	assert.Equal(t, "jq 1\n", readDeps(t, env.cwd))

	require.NoError(t, env.app.Add(context.Background(), env.cwd, "jq", ">=1.6"))
	assert.Equal(t, "jq >=1.6\n", readDeps(t, env.cwd))
}

func TestApp_Add_InvalidVersionLeavesFileUntouched(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "# mine\n")

	err := env.app.Add(context.Background(), env.cwd, "jq", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDeclaration)
	assert.Equal(t, "# mine\n", readDeps(t, env.cwd))
}

func TestApp_Remove(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "nodejs 20\njq 1\n")
	env.installToStore().Times(1)

	require.NoError(t, env.app.Remove(context.Background(), env.cwd, "nodejs"))
	assert.Equal(t, "jq 1\n", readDeps(t, env.cwd))

	deps, err := env.app.List(context.Background(), env.cwd)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "jq", deps[0].Name)
}

func TestApp_Remove_NotDeclared(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "jq 1\n")

	err := env.app.Remove(context.Background(), env.cwd, "nodejs")
	assert.ErrorIs(t, err, domain.ErrDependencyNotDeclared)
}

func TestApp_Remove_NoDeclarationFile(t *testing.T) {
	env := newTestEnv(t)

	err := env.app.Remove(context.Background(), env.cwd, "nodejs")
	assert.ErrorIs(t, err, domain.ErrDeclarationFileNotFound)
}

func TestApp_List(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "python ^3.11\nnodejs 20\n")
	env.installToStore().Times(2)

	deps, err := env.app.List(context.Background(), env.cwd)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "python", deps[0].Name)
	assert.Equal(t, "nodejs", deps[1].Name)
	assert.Equal(t, "20", deps[1].RequestedVersion)
	assert.NotEmpty(t, deps[1].InstallLocation)
}

func TestApp_List_Empty(t *testing.T) {
	env := newTestEnv(t)

	deps, err := env.app.List(context.Background(), env.cwd)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestApp_Env_LocalBeforeGlobal(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.globalDir, "ripgrep 14\n")
	writeDeps(t, env.cwd, "jq 1\n")

	gomock.InOrder(
		env.packages.EXPECT().Install(gomock.Any(), domain.ScopeID(env.globalDir), gomock.Any()).Return("/g", nil),
		env.packages.EXPECT().Install(gomock.Any(), domain.ScopeID(env.cwd), gomock.Any()).Return("/l", nil),
	)

	line, err := env.app.Env(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `export PATH="/l/bin:/g/bin:$PATH"`, line)
}

func TestApp_Env_Nothing(t *testing.T) {
	env := newTestEnv(t)

	line, err := env.app.Env(context.Background())
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestApp_Env_SameScopeOnce(t *testing.T) {
	env := newTestEnv(t)
	env.app.WithWorkingDir(env.globalDir)
	writeDeps(t, env.globalDir, "jq 1\n")
	env.packages.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return("/g", nil).Times(1)

	line, err := env.app.Env(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `export PATH="/g/bin:$PATH"`, line)
}

func TestApp_Env_SymlinkedScopeOnce(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "jq 1\n")
	require.NoError(t, os.Symlink(env.cwd, env.globalDir))

	env.packages.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return("/l", nil).Times(1)

	line, err := env.app.Env(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `export PATH="/l/bin:$PATH"`, line)
}

func TestApp_Env_GlobalFailureSkipsLocal(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.globalDir, "jq ^9\n")
	writeDeps(t, env.cwd, "ripgrep 14\n")

	_, err := env.app.Env(context.Background())
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestApp_Env_Failure(t *testing.T) {
	env := newTestEnv(t)
	writeDeps(t, env.cwd, "jq ^9\n")

	_, err := env.app.Env(context.Background())
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestApp_Shell(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("SHELL", "/bin/zsh")
	writeDeps(t, env.cwd, "jq 1\n")
	env.packages.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return("/nix/store/jq", nil)
	env.executor.EXPECT().Execute(gomock.Any(), env.cwd, []string{"/bin/zsh"}, []string{"/nix/store/jq/bin"}).Return(nil)

	require.NoError(t, env.app.Shell(context.Background()))
}

func TestApp_Shell_DefaultShell(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("SHELL", "")
	env.executor.EXPECT().Execute(gomock.Any(), env.cwd, []string{"/bin/sh"}, gomock.Len(0)).Return(nil)

	require.NoError(t, env.app.Shell(context.Background()))
}
