package config

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cbegen/internal/ir"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.Headers)
	assert.Equal(t, 1000, cfg.Sources)
	assert.Equal(t, 3, cfg.HeaderFanIn)
	assert.Equal(t, 10, cfg.SourceFanIn)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "heavy_repo", cfg.Layout.Root)
	assert.Equal(t, "catalyst.build", cfg.Layout.Manifest)
	require.Len(t, cfg.Definitions, 6)
	assert.Equal(t, ir.Definition{Key: "cxxflags", Value: "-std=c++20 -O0 -Iinclude"}, cfg.Definitions[3])
}

func TestParams(t *testing.T) {
	cfg := Default()
	cfg.Headers, cfg.Sources, cfg.HeaderFanIn, cfg.SourceFanIn = 5, 2, 3, 10

	p := cfg.Params()
	assert.Equal(t, 5, p.Headers)
	assert.Equal(t, 2, p.Sources)
	assert.Equal(t, 3, p.HeaderFanIn)
	assert.Equal(t, 10, p.SourceFanIn)
}

func TestWorkerCount(t *testing.T) {
	cfg := Default()
	cfg.Workers = 0
	assert.Equal(t, runtime.NumCPU(), cfg.WorkerCount())
	cfg.Workers = 3
	assert.Equal(t, 3, cfg.WorkerCount())
}

func TestValidate_FanInLargerThanCountIsLegal(t *testing.T) {
	cfg := Default()
	cfg.Headers, cfg.HeaderFanIn, cfg.SourceFanIn = 1, 3, 10
	assert.NoError(t, cfg.Validate(), "oversized bounds are clamped, not rejected")
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"negative headers", func(c *Config) { c.Headers = -1 }, "headers"},
		{"negative sources", func(c *Config) { c.Sources = -3 }, "sources"},
		{"negative header fan-in", func(c *Config) { c.HeaderFanIn = -1 }, "header_fan_in"},
		{"negative source fan-in", func(c *Config) { c.SourceFanIn = -1 }, "source_fan_in"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers"},
		{"empty root", func(c *Config) { c.Layout.Root = "" }, "layout.root"},
		{"empty include dir", func(c *Config) { c.Layout.IncludeDir = "" }, "layout.include_dir"},
		{"dot source dir", func(c *Config) { c.Layout.SourceDir = "." }, "layout.source_dir"},
		{"escaping build dir", func(c *Config) { c.Layout.BuildDir = "../build" }, "layout.build_dir"},
		{"absolute manifest", func(c *Config) { c.Layout.Manifest = "/tmp/catalyst.build" }, "layout.manifest"},
		{"comma in output", func(c *Config) { c.Layout.Output = "a,b" }, "layout.output"},
		{"nested output", func(c *Config) { c.Layout.Output = "bin/app" }, "layout.output"},
		{"shared dirs", func(c *Config) { c.Layout.SourceDir = "include/" }, "layout.source_dir"},
		{"include nested in source", func(c *Config) { c.Layout.IncludeDir = "src/include" }, "layout.source_dir"},
		{"build nested in source", func(c *Config) { c.Layout.BuildDir = "src/build" }, "layout.build_dir"},
		{"whitespace in include dir", func(c *Config) { c.Layout.IncludeDir = "my headers" }, "layout.include_dir"},
		{"unknown key", func(c *Config) { c.Definitions = append(c.Definitions, ir.Definition{Key: "linker"}) }, "definitions[6]"},
		{"duplicate key", func(c *Config) { c.Definitions = append(c.Definitions, ir.Definition{Key: "cc"}) }, "definitions[6]"},
		{"newline in value", func(c *Config) { c.Definitions[0].Value = "clang\n" }, "definitions[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestValidate_SiblingDirsWithSharedPrefix(t *testing.T) {
	cfg := Default()
	cfg.Layout.IncludeDir = "src_headers"
	cfg.Layout.SourceDir = "src"
	cfg.Layout.BuildDir = "out/build"
	assert.NoError(t, cfg.Validate())
}

func TestDefinitionsFor(t *testing.T) {
	assert.Equal(t, DefaultDefinitions(), DefinitionsFor("include"))

	defs := DefinitionsFor("third_party/hdr")
	assert.Equal(t, ir.Definition{Key: "cxxflags", Value: "-std=c++20 -O0 -Ithird_party/hdr"}, defs[3])
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Headers = -1
	cfg.Sources = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "headers")
	assert.Contains(t, err.Error(), "sources")
}
