package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatCUE  Format = "cue"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("unsupported config file %q: want .cue, .yaml, .yml or .hcl", path)
	}
}

// Load reads path, overlays it on the defaults, and validates the result.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Decode(format, path, data)
}

// Decode parses data in the given format on top of Default and validates it.
// Without a definitions list, the default cxxflags follow the include directory.
// name is used in diagnostics only.
func Decode(format Format, name string, data []byte) (*Config, error) {
	var (
		file *fileConfig
		err  error
	)
	switch format {
	case FormatCUE:
		file, err = decodeCUE(name, data)
	case FormatYAML:
		file, err = decodeYAML(data)
	case FormatHCL:
		file, err = decodeHCL(name, data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	file.apply(cfg)
	if file.Definitions == nil {
		cfg.Definitions = DefinitionsFor(cfg.Layout.IncludeDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}
