package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/roach88/cbegen/internal/ir"
)

// Parse reads a manifest the way the build engine does: blank lines and
// lines starting with '#' are skipped, a trailing '\r' is dropped, "DEF|"
// lines bind a key to the rest of the line, and every other line is
// "<tool>|<inputs>|<output>" with comma-separated inputs.
//
// Parse does not enforce the generator's invariants; use Check for that.
func Parse(r io.Reader) (*ir.Manifest, error) {
	m := &ir.Manifest{}
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reading manifest: %w", readErr)
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line != "" && line[0] != '#' {
			if err := parseLine(m, lineNo, line); err != nil {
				return nil, err
			}
		}

		if readErr != nil {
			return m, nil
		}
	}
}

// ParseFile parses the manifest at path.
func ParseFile(path string) (*ir.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseLine(m *ir.Manifest, lineNo int, line string) error {
	if rest, ok := strings.CutPrefix(line, "DEF|"); ok {
		key, value, found := strings.Cut(rest, "|")
		if !found {
			return &ParseError{Line: lineNo, Text: line, Message: "malformed def line (missing second pipe)"}
		}
		m.Definitions = append(m.Definitions, ir.Definition{Key: key, Value: value})
		return nil
	}

	tool, rest, found := strings.Cut(line, "|")
	if !found {
		return &ParseError{Line: lineNo, Text: line, Message: "malformed step line (missing first pipe)"}
	}
	inputs, output, found := strings.Cut(rest, "|")
	if !found {
		return &ParseError{Line: lineNo, Text: line, Message: "malformed step line (missing second pipe)"}
	}

	m.Actions = append(m.Actions, ir.Action{
		Kind:   ir.ActionKind(tool),
		Inputs: splitInputs(inputs),
		Output: output,
	})
	return nil
}

func splitInputs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
