package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/ui/output"
	"go.trai.ch/deps/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats of the list command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the resolved dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			render, err := renderer(format)
			if err != nil {
				return err
			}

			dir, err := c.scopeDir(cmd)
			if err != nil {
				return err
			}
			deps, err := c.app.List(cmd.Context(), dir)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), deps)
		},
	}
	addGlobalFlag(cmd)
	cmd.Flags().StringP("output", "o", formatText, "Output format: text, json, or yaml")
	return cmd
}

func renderer(format string) (func(io.Writer, []domain.ResolvedDependency) error, error) {
	switch strings.ToLower(format) {
	case formatText:
		return renderText, nil
	case formatJSON:
		return renderJSON, nil
	case formatYAML:
		return renderYAML, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownOutputFormat, ""), "format", format)
	}
}

func renderText(w io.Writer, deps []domain.ResolvedDependency) error {
	if len(deps) == 0 {
		_, err := fmt.Fprintln(w, "No dependencies installed.")
		return err
	}

	s := style.NewStyles(output.NewRenderer(w))
	var b strings.Builder
	b.WriteString(s.Header.Render("Installed dependencies:") + "\n\n")
	for _, d := range deps {
		marker := s.Installed.Render(style.Check)
		if d.InstallLocation == "" {
			marker = s.Missing.Render(style.Dot)
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			marker,
			s.Name.Render(d.Name),
			s.Version.Render(d.ResolvedVersion),
			s.Requested.Render("(requested: "+d.RequestedVersion+")"),
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderJSON(w io.Writer, deps []domain.ResolvedDependency) error {
	if deps == nil {
		deps = []domain.ResolvedDependency{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(deps)
}

func renderYAML(w io.Writer, deps []domain.ResolvedDependency) error {
	if deps == nil {
		deps = []domain.ResolvedDependency{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(deps); err != nil {
		return err
	}
	return enc.Close()
}
