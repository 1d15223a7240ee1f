package manifest

import (
	"github.com/roach88/cbegen/internal/ir"
)

// Build turns a generated project into a manifest: the definitions in the
// given order, a compile action per source unit in generation order, a
// compile action for the entry unit, and the link action last.
//
// The result is checked before it is returned; an error here is always an
// *InvariantError.
func Build(defs []ir.Definition, p *ir.Project, l ir.Layout) (*ir.Manifest, error) {
	m := &ir.Manifest{
		Definitions: append([]ir.Definition(nil), defs...),
		Actions:     make([]ir.Action, 0, len(p.Sources)+2),
	}

	artifacts := make([]string, 0, len(p.Sources)+1)
	addCompile := func(file string) {
		out := l.ArtifactPath(file)
		m.Actions = append(m.Actions, ir.Action{
			Kind:   ir.KindCompile,
			Inputs: []string{l.SourcePath(file)},
			Output: out,
		})
		artifacts = append(artifacts, out)
	}

	for _, s := range p.Sources {
		addCompile(ir.SourceFile(s.Index))
	}
	addCompile(ir.EntryFile)

	m.Actions = append(m.Actions, ir.Action{
		Kind:   ir.KindLink,
		Inputs: artifacts,
		Output: l.OutputPath(),
	})

	if err := checkCoverage(m, p, l); err != nil {
		return nil, err
	}
	if err := Check(m); err != nil {
		return nil, err
	}
	return m, nil
}

// checkCoverage verifies that every generated unit has its compile action
// at its generation position.
func checkCoverage(m *ir.Manifest, p *ir.Project, l ir.Layout) error {
	want := len(p.Sources) + 1
	compiles := m.CompileActions()
	if len(compiles) != want {
		return violation("coverage", "expected %d compile actions, got %d", want, len(compiles))
	}
	for j, s := range p.Sources {
		src := l.SourcePath(ir.SourceFile(s.Index))
		if len(compiles[j].Inputs) != 1 || compiles[j].Inputs[0] != src {
			return violation("coverage", "compile action %d does not compile %s", j, src)
		}
	}
	entry := l.SourcePath(ir.EntryFile)
	if last := compiles[want-1]; len(last.Inputs) != 1 || last.Inputs[0] != entry {
		return violation("coverage", "last compile action does not compile %s", entry)
	}
	return nil
}
