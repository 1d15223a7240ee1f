package tree

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/roach88/cbegen/internal/graph"
)

// ScanIncludes reads every .hpp file in dir and returns its quoted-include
// graph: an edge a -> b means b includes a. Angle-bracket includes are
// system headers and are ignored.
func ScanIncludes(dir string) (*graph.Graph, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.hpp"))
	if err != nil {
		return nil, fmt.Errorf("listing headers: %w", err)
	}
	sort.Strings(files)

	g := graph.New()
	for _, path := range files {
		name := filepath.Base(path)
		g.Node(name)

		includes, err := readIncludes(path)
		if err != nil {
			return nil, err
		}
		for _, inc := range includes {
			g.AddEdge(inc, name)
		}
	}
	return g, nil
}

func readIncludes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var includes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rest, ok := strings.CutPrefix(strings.TrimSpace(scanner.Text()), "#include \"")
		if !ok {
			continue
		}
		if name, _, found := strings.Cut(rest, "\""); found {
			includes = append(includes, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return includes, nil
}
