package graph

import "fmt"

// Cycle is one strongly connected component that forms a cycle.
type Cycle struct {
	Path    []string `json:"path"`    // ["a", "b", "a"]
	Message string   `json:"message"` // human-readable description
}

// FindCycles reports every cycle in g using Tarjan's algorithm.
// A DAG returns an empty list.
//
// Components with more than one node, and single nodes with a self edge,
// are cycles. The reported path walks the component back to its first node.
func FindCycles(g *Graph) []Cycle {
	cycles := []Cycle{}
	for _, scc := range tarjanSCC(g) {
		if len(scc) > 1 || hasSelfLoop(g, scc[0]) {
			cycles = append(cycles, sccToCycle(g, scc))
		}
	}
	return cycles
}

func hasSelfLoop(g *Graph, id int) bool {
	for _, t := range g.edges[id] {
		if t == id {
			return true
		}
	}
	return false
}

// tarjanSCC returns strongly connected components as node id lists.
func tarjanSCC(g *Graph) [][]int {
	var (
		counter = 0
		stack   []int
		indices = make([]int, len(g.names))
		lowlink = make([]int, len(g.names))
		onStack = make([]bool, len(g.names))
		sccs    [][]int
	)
	for i := range indices {
		indices[i] = -1
	}

	var strongConnect func(int)
	strongConnect = func(v int) {
		indices[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.edges[v] {
			if indices[w] < 0 {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for v := range g.names {
		if indices[v] < 0 {
			strongConnect(v)
		}
	}
	return sccs
}

// sccToCycle reconstructs a path through the component that returns to its
// first member.
func sccToCycle(g *Graph, scc []int) Cycle {
	members := make(map[int]bool, len(scc))
	for _, id := range scc {
		members[id] = true
	}

	start := scc[0]
	current := start
	path := []string{g.names[start]}
	visited := make(map[int]bool)

	for {
		visited[current] = true
		next := -1
		for _, t := range g.edges[current] {
			if members[t] && (!visited[t] || t == start) {
				next = t
				break
			}
		}
		if next < 0 {
			break
		}
		path = append(path, g.names[next])
		if next == start {
			break
		}
		current = next
	}

	return Cycle{
		Path:    path,
		Message: fmt.Sprintf("cycle detected: %s", formatPath(path)),
	}
}
