package synth

import (
	"bytes"
	"fmt"

	"github.com/roach88/cbegen/internal/ir"
)

// RenderHeader returns the text of a header file. Includes appear in
// dependency order and the exported inline function returns the header's index.
func RenderHeader(h ir.HeaderUnit) []byte {
	var b bytes.Buffer
	b.WriteString("#pragma once\n\n")
	fmt.Fprintf(&b, "// Header %d\n", h.Index)
	for _, dep := range h.Deps {
		fmt.Fprintf(&b, "#include \"%s\"\n", ir.HeaderFile(dep))
	}
	fmt.Fprintf(&b, "\ninline int %s() { return %d; }\n", h.Symbol(), h.Value())
	return b.Bytes()
}

// RenderSource returns the text of a translation unit. Every included header
// is also called, so no include is dead.
func RenderSource(s ir.SourceUnit) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Source %d\n", s.Index)
	for _, dep := range s.Deps {
		fmt.Fprintf(&b, "#include \"%s\"\n", ir.HeaderFile(dep))
	}
	fmt.Fprintf(&b, "\nint %s() {\n", s.Symbol())
	b.WriteString("    int sum = 0;\n")
	for _, dep := range s.Deps {
		fmt.Fprintf(&b, "    sum += %s();\n", ir.HeaderSymbol(dep))
	}
	b.WriteString("    return sum;\n")
	b.WriteString("}\n")
	return b.Bytes()
}

// RenderEntry returns the text of the entry unit: forward declarations of
// every source symbol and a main that prints their sum.
func RenderEntry(e ir.EntryUnit) []byte {
	var b bytes.Buffer
	b.WriteString("#include <iostream>\n")
	for j := 0; j < e.Sources; j++ {
		fmt.Fprintf(&b, "int %s();\n", ir.SourceSymbol(j))
	}
	b.WriteString("\nint main() {\n")
	b.WriteString("    int total = 0;\n")
	for j := 0; j < e.Sources; j++ {
		fmt.Fprintf(&b, "    total += %s();\n", ir.SourceSymbol(j))
	}
	b.WriteString("    std::cout << \"Total: \" << total << std::endl;\n")
	b.WriteString("    return 0;\n")
	b.WriteString("}\n")
	return b.Bytes()
}
