package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/manifest"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Actions bool
}

// InspectResult describes a parsed manifest.
type InspectResult struct {
	Path        string           `json:"path"`
	Digest      string           `json:"digest"`
	Summary     manifest.Summary `json:"summary"`
	Definitions []ir.Definition  `json:"definitions"`
	Actions     []ir.Action      `json:"actions,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Summarize a build manifest",
		Long: `Print the definitions, action counts, final output, and content digest
of a catalyst.build manifest. The digest covers the file bytes and matches
the one recorded by generate --ledger. Use --actions to list every action.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Actions, "actions", false, "list every action")

	return cmd
}

func runInspect(opts *InspectOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	m, err := manifest.Parse(bytes.NewReader(data))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeParseFailed, fmt.Sprintf("%s: %v", path, err), nil)
	}

	result := &InspectResult{
		Path:        path,
		Digest:      ir.ManifestDigest(data),
		Summary:     manifest.Summarize(m),
		Definitions: m.Definitions,
	}
	if opts.Actions {
		result.Actions = m.Actions
	}

	return outputInspect(formatter, result)
}

func outputInspect(formatter *OutputFormatter, result *InspectResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Manifest: %s\n", result.Path)
	const width = 16
	formatter.Field(width, "digest", "%s", result.Digest)
	formatter.Field(width, "compile actions", "%d", result.Summary.CompileActions)
	formatter.Field(width, "link actions", "%d", result.Summary.LinkActions)
	formatter.Field(width, "output", "%s (%d artifact(s))", result.Summary.Output, result.Summary.Artifacts)

	fmt.Fprintf(w, "\nDefinitions (%d):\n", len(result.Definitions))
	for _, d := range result.Definitions {
		formatter.Line("%-9s = %s", d.Key, d.Value)
	}

	if len(result.Actions) > 0 {
		fmt.Fprintf(w, "\nActions (%d):\n", len(result.Actions))
		for _, a := range result.Actions {
			formatter.Line("%-3s %s -> %s", a.Kind, strings.Join(a.Inputs, ","), a.Output)
		}
	}
	return nil
}
