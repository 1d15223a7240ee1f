package manifest

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/cbegen/internal/ir"
)

// Encode writes m in the manifest line format. The manifest is checked
// first and nothing is written if it is invalid.
//
// Every field is NFC-normalized at the serialization boundary so visually
// identical configuration values always encode to the same bytes. The
// check runs on the normalized fields, so two paths that only differ in
// normalization count as the same artifact.
func Encode(w io.Writer, m *ir.Manifest) error {
	nm := normalize(m)
	if err := Check(nm); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, d := range nm.Definitions {
		writeLine(bw, "DEF", d.Key, d.Value)
	}
	for _, a := range nm.Actions {
		writeLine(bw, string(a.Kind), strings.Join(a.Inputs, ","), a.Output)
	}
	return bw.Flush()
}

// Marshal returns the encoded manifest.
func Marshal(m *ir.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize returns an NFC copy of m. m itself is left untouched.
func normalize(m *ir.Manifest) *ir.Manifest {
	out := &ir.Manifest{
		Definitions: make([]ir.Definition, len(m.Definitions)),
		Actions:     make([]ir.Action, len(m.Actions)),
	}
	for i, d := range m.Definitions {
		out.Definitions[i] = ir.Definition{Key: norm.NFC.String(d.Key), Value: norm.NFC.String(d.Value)}
	}
	for i, a := range m.Actions {
		inputs := make([]string, len(a.Inputs))
		for j, in := range a.Inputs {
			inputs[j] = norm.NFC.String(in)
		}
		out.Actions[i] = ir.Action{
			Kind:   ir.ActionKind(norm.NFC.String(string(a.Kind))),
			Inputs: inputs,
			Output: norm.NFC.String(a.Output),
		}
	}
	return out
}

// writeLine emits one "a|b|c" line. Write errors surface from Flush.
func writeLine(w *bufio.Writer, a, b, c string) {
	w.WriteString(a)
	w.WriteByte('|')
	w.WriteString(b)
	w.WriteByte('|')
	w.WriteString(c)
	w.WriteByte('\n')
}
