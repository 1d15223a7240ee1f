package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/cbegen/internal/graph"
	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/manifest"
	"github.com/roach88/cbegen/internal/tree"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	HeadersDir string
}

// ValidationIssue is one problem found in a manifest or header tree.
type ValidationIssue struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Cycle   []string `json:"cycle,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Path    string            `json:"path"`
	Summary manifest.Summary  `json:"summary"`
	Headers int               `json:"headers,omitempty"`
	Issues  []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Check a build manifest and optionally its header tree",
		Long: `Parse a catalyst.build manifest and check it for structural problems:
missing definitions, a link action that is not last, duplicate artifacts,
link inputs that no compile action produces, and dependency cycles.

With --headers, the quoted includes of every .hpp file in the directory are
also read and checked for cycles.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.HeadersDir, "headers", "", "also check the include graph of this header directory")

	return cmd
}

func runValidate(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	m, err := manifest.ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeParseFailed, err.Error(), nil)
	}

	result := &ValidationResult{
		Valid:   true,
		Path:    path,
		Summary: manifest.Summarize(m),
	}
	formatter.VerboseLog("Parsed %d definition(s) and %d action(s) from %s",
		len(m.Definitions), len(m.Actions), path)

	result.Issues = append(result.Issues, checkManifest(m)...)

	if opts.HeadersDir != "" {
		g, err := tree.ScanIncludes(opts.HeadersDir)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		result.Headers = g.Len()
		formatter.VerboseLog("Scanned %d header(s) with %d include(s) in %s",
			g.Len(), g.EdgeCount(), opts.HeadersDir)
		result.Issues = append(result.Issues, cycleIssues(g)...)
	}

	result.Valid = len(result.Issues) == 0
	if !result.Valid {
		return outputValidateFailure(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

func checkManifest(m *ir.Manifest) []ValidationIssue {
	var issues []ValidationIssue
	if err := manifest.Check(m); err != nil {
		var ie *manifest.InvariantError
		if errors.As(err, &ie) {
			issues = append(issues, ValidationIssue{Code: ErrCodeInvariant, Message: ie.Error()})
		} else {
			issues = append(issues, ValidationIssue{Code: ErrCodeGeneric, Message: err.Error()})
		}
	}
	return append(issues, cycleIssues(graph.FromManifest(m))...)
}

func cycleIssues(g *graph.Graph) []ValidationIssue {
	_, err := graph.TopoOrder(g)
	var ce *graph.CycleError
	if !errors.As(err, &ce) {
		return nil
	}
	issues := make([]ValidationIssue, 0, len(ce.Cycles))
	for _, c := range ce.Cycles {
		issues = append(issues, ValidationIssue{Code: ErrCodeCycle, Message: c.Message, Cycle: c.Path})
	}
	if len(issues) == 0 {
		issues = append(issues, ValidationIssue{Code: ErrCodeCycle, Message: ce.Error()})
	}
	return issues
}

func outputValidateSuccess(formatter *OutputFormatter, result *ValidationResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	formatter.Passed("%s is valid", result.Path)
	formatter.Line("%d definition(s), %d compile action(s), %d link action(s)",
		result.Summary.Definitions, result.Summary.CompileActions, result.Summary.LinkActions)
	if result.Headers > 0 {
		formatter.Line("%d header(s), include graph is acyclic", result.Headers)
	}
	return nil
}

func outputValidateFailure(formatter *OutputFormatter, result *ValidationResult) error {
	first := result.Issues[0]
	if formatter.JSON() {
		return formatter.Fail(ExitFailure, first.Code,
			fmt.Sprintf("%s: %d issue(s) found", result.Path, len(result.Issues)), result)
	}

	formatter.Failed("%s: %d issue(s) found", result.Path, len(result.Issues))
	for _, issue := range result.Issues {
		formatter.Line("[%s] %s", issue.Code, issue.Message)
	}
	return WrapExitError(ExitFailure, fmt.Sprintf("%s: %s", first.Code, first.Message), nil)
}
