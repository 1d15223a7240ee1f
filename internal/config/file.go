package config

import "github.com/roach88/cbegen/internal/ir"

// fileConfig is the on-disk shape shared by every format. Pointer fields
// distinguish "absent" from "zero" so defaults survive partial files.
type fileConfig struct {
	Headers     *int            `json:"headers,omitempty" yaml:"headers" hcl:"headers,optional"`
	Sources     *int            `json:"sources,omitempty" yaml:"sources" hcl:"sources,optional"`
	HeaderFanIn *int            `json:"header_fan_in,omitempty" yaml:"header_fan_in" hcl:"header_fan_in,optional"`
	SourceFanIn *int            `json:"source_fan_in,omitempty" yaml:"source_fan_in" hcl:"source_fan_in,optional"`
	Seed        *uint64         `json:"seed,omitempty" yaml:"seed" hcl:"seed,optional"`
	Workers     *int            `json:"workers,omitempty" yaml:"workers" hcl:"workers,optional"`
	Layout      *fileLayout     `json:"layout,omitempty" yaml:"layout" hcl:"layout,block"`
	Definitions []ir.Definition `json:"definitions,omitempty" yaml:"definitions" hcl:"definition,block"`
}

type fileLayout struct {
	Root       *string `json:"root,omitempty" yaml:"root" hcl:"root,optional"`
	IncludeDir *string `json:"include_dir,omitempty" yaml:"include_dir" hcl:"include_dir,optional"`
	SourceDir  *string `json:"source_dir,omitempty" yaml:"source_dir" hcl:"source_dir,optional"`
	BuildDir   *string `json:"build_dir,omitempty" yaml:"build_dir" hcl:"build_dir,optional"`
	Manifest   *string `json:"manifest,omitempty" yaml:"manifest" hcl:"manifest,optional"`
	Output     *string `json:"output,omitempty" yaml:"output" hcl:"output,optional"`
}

// apply overlays every field present in f onto c. A definitions list in the
// file replaces the default list as a whole.
func (f *fileConfig) apply(c *Config) {
	setInt(&c.Headers, f.Headers)
	setInt(&c.Sources, f.Sources)
	setInt(&c.HeaderFanIn, f.HeaderFanIn)
	setInt(&c.SourceFanIn, f.SourceFanIn)
	setInt(&c.Workers, f.Workers)
	if f.Seed != nil {
		c.Seed = *f.Seed
	}
	if f.Layout != nil {
		setString(&c.Layout.Root, f.Layout.Root)
		setString(&c.Layout.IncludeDir, f.Layout.IncludeDir)
		setString(&c.Layout.SourceDir, f.Layout.SourceDir)
		setString(&c.Layout.BuildDir, f.Layout.BuildDir)
		setString(&c.Layout.Manifest, f.Layout.Manifest)
		setString(&c.Layout.Output, f.Layout.Output)
	}
	if f.Definitions != nil {
		c.Definitions = append([]ir.Definition(nil), f.Definitions...)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
