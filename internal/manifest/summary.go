package manifest

import "github.com/roach88/cbegen/internal/ir"

// Summary counts the parts of a manifest.
type Summary struct {
	Definitions    int    `json:"definitions"`
	CompileActions int    `json:"compile_actions"`
	LinkActions    int    `json:"link_actions"`
	Artifacts      int    `json:"artifacts"`
	Output         string `json:"output,omitempty"`
}

// Summarize reports counts for m. Artifacts counts the inputs of the last
// link action, which is also the reported output.
func Summarize(m *ir.Manifest) Summary {
	s := Summary{Definitions: len(m.Definitions)}
	for _, a := range m.Actions {
		switch {
		case a.Kind.IsCompile():
			s.CompileActions++
		case a.Kind == ir.KindLink:
			s.LinkActions++
			s.Artifacts = len(a.Inputs)
			s.Output = a.Output
		}
	}
	return s
}
