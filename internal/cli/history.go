package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/cbegen/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Ledger string
	Limit  int
	Digest string
}

// HistoryResult lists recorded runs, newest first.
type HistoryResult struct {
	Ledger string      `json:"ledger"`
	Runs   []store.Run `json:"runs"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generation runs recorded in a ledger",
		Long: `List runs recorded by generate --ledger, newest first.

Each run's seed reproduces its tree. With --digest, only runs whose manifest
had that digest are listed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "path to the run ledger (required)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum runs to list; 0 lists all")
	cmd.Flags().StringVar(&opts.Digest, "digest", "", "only list runs with this manifest digest")
	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Opening would create an empty ledger; a typo should not.
	if _, err := os.Stat(opts.Ledger); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound,
				fmt.Sprintf("ledger not found: %s", opts.Ledger), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err.Error(), nil)
	}

	ledger, err := store.Open(opts.Ledger)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err.Error(), nil)
	}
	defer ledger.Close()

	var runs []store.Run
	if opts.Digest != "" {
		runs, err = ledger.RunsByDigest(cmd.Context(), opts.Digest)
		slices.Reverse(runs)
		if opts.Limit > 0 && len(runs) > opts.Limit {
			runs = runs[:opts.Limit]
		}
	} else {
		runs, err = ledger.ListRuns(cmd.Context(), opts.Limit)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err.Error(), nil)
	}
	formatter.VerboseLog("Read %d run(s) from %s", len(runs), opts.Ledger)

	return outputHistory(formatter, &HistoryResult{Ledger: opts.Ledger, Runs: runs})
}

func outputHistory(formatter *OutputFormatter, result *HistoryResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	w := formatter.Writer
	if len(result.Runs) == 0 {
		fmt.Fprintf(w, "No runs recorded in %s\n", result.Ledger)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tSEED\tHEADERS\tSOURCES\tFAN-IN\tROOT\tDIGEST")
	for _, r := range result.Runs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d/%d\t%s\t%s\n",
			r.Seq, r.Seed, r.Headers, r.Sources, r.HeaderFanIn, r.SourceFanIn, r.Root, shortDigest(r.ManifestDigest))
	}
	return tw.Flush()
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
