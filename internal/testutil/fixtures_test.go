package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/cbegen/internal/synth"
)

func TestLayoutIsIsolated(t *testing.T) {
	a := Layout(t)
	b := Layout(t)
	assert.NotEqual(t, a.Root, b.Root)
	assert.Equal(t, "heavy_repo", filepath.Base(a.Root))
}

func TestConfig(t *testing.T) {
	cfg := Config(t)
	assert.Equal(t, Seed, cfg.Seed)
	assert.Equal(t, 20, cfg.Headers)
}

func TestProjectIsReproducible(t *testing.T) {
	p := synth.Params{Headers: 30, Sources: 10, HeaderFanIn: 3, SourceFanIn: 5}
	assert.Equal(t, Project(t, p), Project(t, p))
}
