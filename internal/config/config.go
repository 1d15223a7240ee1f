package config

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/synth"
)

// Config sizes a run, places its output, and lists the manifest definitions.
type Config struct {
	Headers     int             `json:"headers"`
	Sources     int             `json:"sources"`
	HeaderFanIn int             `json:"header_fan_in"`
	SourceFanIn int             `json:"source_fan_in"`
	Seed        uint64          `json:"seed"`    // 0 draws a fresh seed
	Workers     int             `json:"workers"` // parallel file writes; 0 means one per CPU
	Layout      ir.Layout       `json:"layout"`
	Definitions []ir.Definition `json:"definitions"`
}

// Defaults mirror the original heavy-repo benchmark.
const (
	DefaultHeaders     = 1000
	DefaultSources     = 1000
	DefaultHeaderFanIn = 3
	DefaultSourceFanIn = 10
)

// DefaultLayout returns the standard tree layout.
func DefaultLayout() ir.Layout {
	return ir.Layout{
		Root:       "heavy_repo",
		IncludeDir: "include",
		SourceDir:  "src",
		BuildDir:   "build",
		Manifest:   "catalyst.build",
		Output:     "heavy_app",
	}
}

// DefaultDefinitions returns the toolchain definitions written to every
// manifest unless a configuration replaces them.
func DefaultDefinitions() []ir.Definition {
	return DefinitionsFor(DefaultLayout().IncludeDir)
}

// DefinitionsFor returns the default definitions with cxxflags pointing the
// compiler at includeDir, where generated sources find their headers.
func DefinitionsFor(includeDir string) []ir.Definition {
	return []ir.Definition{
		{Key: ir.DefCC, Value: "clang"},
		{Key: ir.DefCXX, Value: "clang++"},
		{Key: ir.DefCFlags, Value: ""},
		{Key: ir.DefCXXFlags, Value: "-std=c++20 -O0 -I" + includeDir},
		{Key: ir.DefLDFlags, Value: ""},
		{Key: ir.DefLDLibs, Value: ""},
	}
}

// Default returns a complete, valid configuration.
func Default() *Config {
	return &Config{
		Headers:     DefaultHeaders,
		Sources:     DefaultSources,
		HeaderFanIn: DefaultHeaderFanIn,
		SourceFanIn: DefaultSourceFanIn,
		Workers:     runtime.NumCPU(),
		Layout:      DefaultLayout(),
		Definitions: DefaultDefinitions(),
	}
}

// Params returns the generator sizes.
func (c *Config) Params() synth.Params {
	return synth.Params{
		Headers:     c.Headers,
		Sources:     c.Sources,
		HeaderFanIn: c.HeaderFanIn,
		SourceFanIn: c.SourceFanIn,
	}
}

// WorkerCount resolves Workers to a positive number.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// ErrInvalid matches every *FieldError via errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// FieldError reports one rejected configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Validate rejects configurations that must not reach the generator.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"headers", c.Headers},
		{"sources", c.Sources},
		{"header_fan_in", c.HeaderFanIn},
		{"source_fan_in", c.SourceFanIn},
		{"workers", c.Workers},
	} {
		if f.value < 0 {
			fail(f.name, "must be >= 0, got %d", f.value)
		}
	}

	if c.Layout.Root == "" {
		fail("layout.root", "must not be empty")
	}
	type dirField struct{ name, clean string }
	var dirs []dirField
	for _, f := range []struct {
		name  string
		value string
		isDir bool
	}{
		{"layout.include_dir", c.Layout.IncludeDir, true},
		{"layout.source_dir", c.Layout.SourceDir, true},
		{"layout.build_dir", c.Layout.BuildDir, true},
		{"layout.manifest", c.Layout.Manifest, false},
		{"layout.output", c.Layout.Output, false},
	} {
		if msg := checkRelative(f.value); msg != "" {
			fail(f.name, "%s", msg)
			continue
		}
		if !f.isDir {
			continue
		}
		if f.name == "layout.include_dir" && strings.ContainsAny(f.value, " \t") {
			fail(f.name, "%q contains whitespace and cannot follow -I", f.value)
		}
		clean := path.Clean(f.value)
		for _, other := range dirs {
			switch {
			case clean == other.clean:
				fail(f.name, "must differ from %s", other.name)
			case strings.HasPrefix(clean, other.clean+"/"), strings.HasPrefix(other.clean, clean+"/"):
				fail(f.name, "must not nest with %s", other.name)
			}
		}
		dirs = append(dirs, dirField{f.name, clean})
	}
	if strings.Contains(c.Layout.Output, "/") {
		fail("layout.output", "must be a file name, got %q", c.Layout.Output)
	}

	seen := make(map[string]bool, len(c.Definitions))
	for i, d := range c.Definitions {
		field := fmt.Sprintf("definitions[%d]", i)
		switch {
		case !ir.KnownDefinitionKeys[d.Key]:
			fail(field, "unrecognized key %q", d.Key)
		case seen[d.Key]:
			fail(field, "duplicate key %q", d.Key)
		}
		seen[d.Key] = true
		if strings.ContainsAny(d.Value, "\r\n") {
			fail(field, "value of %q contains a newline", d.Key)
		}
	}

	return errors.Join(errs...)
}

// checkRelative returns a message if p is not a usable path below the root.
// Manifest paths have no escaping, so delimiters are rejected outright.
func checkRelative(p string) string {
	switch {
	case p == "":
		return "must not be empty"
	case strings.ContainsAny(p, "|,\r\n"):
		return fmt.Sprintf("%q contains a manifest delimiter", p)
	case strings.Contains(p, `\`):
		return fmt.Sprintf("%q must use forward slashes", p)
	case path.IsAbs(p):
		return fmt.Sprintf("%q must be relative to the root", p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Sprintf("%q must name an entry below the root", p)
	}
	return ""
}
