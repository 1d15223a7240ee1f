package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/cbegen/internal/config"
	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/manifest"
	"github.com/roach88/cbegen/internal/store"
	"github.com/roach88/cbegen/internal/synth"
	"github.com/roach88/cbegen/internal/tree"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	ConfigPath  string
	Headers     int
	Sources     int
	HeaderFanIn int
	SourceFanIn int
	Seed        uint64
	Workers     int
	Root        string
	Ledger      string // run ledger database; empty disables recording
	DryRun      bool
}

// GenerateResult is the summary printed after a run.
type GenerateResult struct {
	RunID          string `json:"run_id,omitempty"`
	Seed           uint64 `json:"seed"`
	Headers        int    `json:"headers"`
	Sources        int    `json:"sources"`
	CompileActions int    `json:"compile_actions"`
	Root           string `json:"root"`
	Manifest       string `json:"manifest"`
	ManifestDigest string `json:"manifest_digest"`
	Files          int64  `json:"files"`
	Bytes          int64  `json:"bytes"`
	Total          int    `json:"total"` // what the generated program prints
	DryRun         bool   `json:"dry_run,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a source tree and its build manifest",
		Long: `Generate header and source files plus a catalyst.build manifest.

Settings come from the defaults, then the --config file (.cue, .yaml or
.hcl), then any flags given explicitly. Re-running into an existing root
fully overwrites the generated directories and the manifest.

A run is reproducible from its seed. Pass --ledger to record each run's
seed, sizes, and manifest digest in a SQLite database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.cue, .yaml, .yml, .hcl)")
	cmd.Flags().IntVar(&opts.Headers, "headers", defaults.Headers, "number of headers (N)")
	cmd.Flags().IntVar(&opts.Sources, "sources", defaults.Sources, "number of source units (M)")
	cmd.Flags().IntVar(&opts.HeaderFanIn, "header-fan-in", defaults.HeaderFanIn, "max includes per header (K)")
	cmd.Flags().IntVar(&opts.SourceFanIn, "source-fan-in", defaults.SourceFanIn, "max includes per source unit (K')")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed; 0 draws a fresh one")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel file writes; 0 means one per CPU")
	cmd.Flags().StringVarP(&opts.Root, "root", "o", defaults.Layout.Root, "output root directory")
	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "record the run in this SQLite ledger")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "generate and encode without writing files")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.Verbose, formatter.GetErrWriter())
	defer logger.Sync()

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidConfig, err.Error(), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeConfigLoad, err.Error(), nil)
	}

	sampler := synth.NewSampler(cfg.Seed)
	formatter.VerboseLog("Generating %d header(s) and %d source unit(s) with seed %d",
		cfg.Headers, cfg.Sources, sampler.Seed())

	project, err := synth.Generate(cfg.Params(), sampler)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidConfig, err.Error(), nil)
	}

	m, err := manifest.Build(cfg.Definitions, project, cfg.Layout)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeInvariant, err.Error(), nil)
	}
	data, err := manifest.Marshal(m)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeInvariant, err.Error(), nil)
	}

	result := &GenerateResult{
		Seed:           sampler.Seed(),
		Headers:        len(project.Headers),
		Sources:        len(project.Sources),
		CompileActions: len(m.CompileActions()),
		Root:           cfg.Layout.Root,
		Manifest:       cfg.Layout.ManifestPath(),
		ManifestDigest: ir.ManifestDigest(data),
		Total:          project.Total(),
		DryRun:         opts.DryRun,
	}

	if !opts.DryRun {
		written, err := tree.Write(cmd.Context(), cfg.Layout, project, data, tree.Options{
			Workers: cfg.WorkerCount(),
			Logger:  logger,
		})
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
		}
		result.Files = written.Files
		result.Bytes = written.Bytes
	}

	if opts.Ledger != "" {
		runID, err := recordRun(cmd, opts.Ledger, cfg, result)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeLedger, err.Error(), nil)
		}
		result.RunID = runID
		formatter.VerboseLog("Recorded run %s in %s", runID, opts.Ledger)
	}

	return outputGenerateSuccess(formatter, result)
}

// resolveConfig layers defaults, the config file, and explicitly set flags.
func resolveConfig(opts *GenerateOptions, cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("headers") {
		cfg.Headers = opts.Headers
	}
	if flags.Changed("sources") {
		cfg.Sources = opts.Sources
	}
	if flags.Changed("header-fan-in") {
		cfg.HeaderFanIn = opts.HeaderFanIn
	}
	if flags.Changed("source-fan-in") {
		cfg.SourceFanIn = opts.SourceFanIn
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	if flags.Changed("root") {
		cfg.Layout.Root = opts.Root
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func recordRun(cmd *cobra.Command, path string, cfg *config.Config, result *GenerateResult) (string, error) {
	ledger, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer ledger.Close()

	run, err := ledger.RecordRun(cmd.Context(), store.Run{
		Seed:           result.Seed,
		Headers:        cfg.Headers,
		Sources:        cfg.Sources,
		HeaderFanIn:    cfg.HeaderFanIn,
		SourceFanIn:    cfg.SourceFanIn,
		Root:           cfg.Layout.Root,
		ManifestDigest: result.ManifestDigest,
		CompileActions: result.CompileActions,
		Files:          result.Files,
	})
	if err != nil {
		return "", err
	}
	return run.ID, nil
}

func outputGenerateSuccess(formatter *OutputFormatter, result *GenerateResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	if result.DryRun {
		formatter.Passed("Generated %d header(s), %d source unit(s) (dry run, nothing written)",
			result.Headers, result.Sources)
	} else {
		formatter.Passed("Generated %d header(s), %d source unit(s) in %s",
			result.Headers, result.Sources, result.Root)
	}
	const width = 9
	formatter.Field(width, "seed", "%d", result.Seed)
	formatter.Field(width, "manifest", "%s (%d compile action(s), 1 link)", result.Manifest, result.CompileActions)
	formatter.Field(width, "digest", "%s", result.ManifestDigest)
	if !result.DryRun {
		formatter.Field(width, "files", "%d (%d bytes)", result.Files, result.Bytes)
	}
	if result.RunID != "" {
		formatter.Field(width, "run", "%s", result.RunID)
	}
	return nil
}
