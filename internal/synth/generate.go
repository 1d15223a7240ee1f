package synth

import (
	"errors"
	"fmt"

	"github.com/roach88/cbegen/internal/ir"
)

// Params sizes a generation run.
type Params struct {
	Headers     int // N
	Sources     int // M
	HeaderFanIn int // K, max includes per header
	SourceFanIn int // K', max includes per source unit
}

// ErrInvalidParams marks a request that must be rejected before generation.
var ErrInvalidParams = errors.New("invalid generation parameters")

// Validate rejects negative counts and bounds. Bounds larger than the
// available candidates are legal and clamped during sampling.
func (p Params) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidParams, name, v))
		}
	}
	check("headers", p.Headers)
	check("sources", p.Sources)
	check("header fan-in", p.HeaderFanIn)
	check("source fan-in", p.SourceFanIn)
	return errors.Join(errs...)
}

// Generate runs the header stage, then the source stage, and returns the
// complete project. The sampler is consumed in that order so a seed fully
// determines the result.
func Generate(p Params, s *Sampler) (*ir.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	headers := GenerateHeaders(p.Headers, p.HeaderFanIn, s)
	sources := GenerateSources(p.Sources, len(headers), p.SourceFanIn, s)

	return &ir.Project{
		Headers: headers,
		Sources: sources,
		Entry:   GenerateEntry(sources),
	}, nil
}
