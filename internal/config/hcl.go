package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// decodeHCL parses an HCL config. Definitions are written as labelled blocks:
//
//	headers = 500
//	layout {
//	  root = "out"
//	}
//	definition "cxx" {
//	  value = "clang++"
//	}
func decodeHCL(name string, data []byte) (*fileConfig, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var file fileConfig
	diags = gohcl.DecodeBody(hclFile.Body, nil, &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}
	// gohcl allocates the block slice even when no blocks are present.
	if len(file.Definitions) == 0 {
		file.Definitions = nil
	}
	return &file, nil
}
