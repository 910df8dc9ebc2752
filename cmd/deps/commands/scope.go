package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a deps file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := c.scopeDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Init(dir)
		},
	}
	addGlobalFlag(cmd)
	return cmd
}

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Resolve and install the declared dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := c.scopeDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Install(cmd.Context(), dir)
		},
	}
	addGlobalFlag(cmd)
	return cmd
}

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <package> <version>",
		Short:   "Declare a dependency and install it",
		Example: "  deps add nodejs 20\n  deps add -g ripgrep ^14",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.scopeDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Add(cmd.Context(), dir, args[0], args[1])
		},
	}
	addGlobalFlag(cmd)
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <package>",
		Short: "Remove a dependency declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.scopeDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Remove(cmd.Context(), dir, args[0])
		},
	}
	addGlobalFlag(cmd)
	return cmd
}
