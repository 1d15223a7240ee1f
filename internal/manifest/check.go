package manifest

import (
	"strings"

	"github.com/roach88/cbegen/internal/ir"
)

// Check verifies the structural rules of a manifest:
//   - definition keys are non-empty and free of '|'; no field holds a newline
//   - every action before the last is a single-input compile
//   - the last action is the only link
//   - the link inputs are exactly the compile outputs, in order, each once
//   - paths are non-empty and free of '|' and ','
func Check(m *ir.Manifest) error {
	for i, d := range m.Definitions {
		if d.Key == "" {
			return violation("definition", "definition %d has an empty key", i)
		}
		if strings.ContainsAny(d.Key, "|\r\n") {
			return violation("definition", "key %q contains a delimiter", d.Key)
		}
		if strings.ContainsAny(d.Value, "\r\n") {
			return violation("definition", "value of %q contains a newline", d.Key)
		}
	}

	if len(m.Actions) == 0 {
		return violation("link-last", "manifest has no actions")
	}

	last := len(m.Actions) - 1
	link := m.Actions[last]
	if link.Kind != ir.KindLink {
		return violation("link-last", "last action is %q, want %q", link.Kind, ir.KindLink)
	}

	outputs := make([]string, 0, last)
	seen := make(map[string]bool, last)
	for i, a := range m.Actions[:last] {
		if a.Kind == ir.KindLink {
			return violation("single-link", "link action at position %d is not last", i)
		}
		if !a.Kind.IsCompile() {
			return violation("action-kind", "unknown action kind %q at position %d", a.Kind, i)
		}
		if len(a.Inputs) != 1 {
			return violation("compile-input", "compile action %d has %d inputs, want 1", i, len(a.Inputs))
		}
		if err := checkPath(a.Inputs[0]); err != nil {
			return err
		}
		if err := checkPath(a.Output); err != nil {
			return err
		}
		if seen[a.Output] {
			return violation("unique-artifact", "artifact %s is produced twice", a.Output)
		}
		seen[a.Output] = true
		outputs = append(outputs, a.Output)
	}

	if err := checkPath(link.Output); err != nil {
		return err
	}
	if len(link.Inputs) != len(outputs) {
		return violation("link-inputs", "link lists %d artifacts, compile actions produce %d", len(link.Inputs), len(outputs))
	}
	for i, in := range link.Inputs {
		if in != outputs[i] {
			return violation("link-inputs", "link artifact %d is %s, want %s", i, in, outputs[i])
		}
	}
	return nil
}

func checkPath(p string) error {
	if p == "" {
		return violation("path", "empty path")
	}
	if strings.ContainsAny(p, "|,\r\n") {
		return violation("path", "path %q contains a delimiter", p)
	}
	return nil
}
