package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// decodeCUE unifies the file with the embedded #Config schema, so range and
// unknown-field errors carry CUE positions, then decodes the concrete value.
func decodeCUE(name string, data []byte) (*fileConfig, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(name))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %s", errors.Details(err, nil))
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid CUE config: %s", errors.Details(err, nil))
	}

	var file fileConfig
	if err := unified.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding CUE config: %w", err)
	}
	return &file, nil
}
