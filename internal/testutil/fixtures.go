// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/cbegen/internal/config"
	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/synth"
)

// Seed is the fixed seed fixtures generate with, so failures reproduce.
const Seed uint64 = 20240601

// Layout returns the default layout rooted in a fresh temporary directory.
func Layout(t testing.TB) ir.Layout {
	t.Helper()
	layout := config.DefaultLayout()
	layout.Root = filepath.Join(t.TempDir(), layout.Root)
	return layout
}

// Config returns a small valid configuration rooted in a temporary directory.
func Config(t testing.TB) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Headers = 20
	cfg.Sources = 8
	cfg.Seed = Seed
	cfg.Workers = 2
	cfg.Layout = Layout(t)
	require.NoError(t, cfg.Validate())
	return cfg
}

// Project generates a project with the fixture seed.
func Project(t testing.TB, p synth.Params) *ir.Project {
	t.Helper()
	project, err := synth.Generate(p, synth.NewSampler(Seed))
	require.NoError(t, err)
	return project
}
