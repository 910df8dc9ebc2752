// Package commands implements the CLI commands for deps.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.trai.ch/deps/internal/build"
	"go.trai.ch/deps/internal/core/domain"
)

// CLI represents the command line interface for deps.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ScopeDir(global bool) (string, error)
	Init(dir string) error
	Install(ctx context.Context, dir string) error
	Add(ctx context.Context, dir, name, version string) error
	Remove(ctx context.Context, dir, name string) error
	List(ctx context.Context, dir string) ([]domain.ResolvedDependency, error)
	Env(ctx context.Context) (string, error)
	Shell(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "deps",
		Short:         "Per-project and global dependencies backed by nix",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newShellCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
// Errors are returned to the caller instead of being printed.
func (c *CLI) Execute(ctx context.Context) error {
	return fang.Execute(ctx, c.rootCmd,
		fang.WithVersion(build.Version),
		fang.WithCommit(build.Commit),
		fang.WithErrorHandler(func(io.Writer, fang.Styles, error) {}),
	)
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addGlobalFlag adds --global/-g to a scope-taking command.
func addGlobalFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("global", "g", false, "Use the global deps file instead of the current directory")
}

// scopeDir returns the scope directory selected by the --global flag of cmd.
func (c *CLI) scopeDir(cmd *cobra.Command) (string, error) {
	global, _ := cmd.Flags().GetBool("global")
	return c.app.ScopeDir(global)
}
