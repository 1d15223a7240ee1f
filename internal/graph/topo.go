package graph

import (
	"fmt"
	"strings"
)

// CycleError reports nodes that a topological traversal could not order.
type CycleError struct {
	Remaining []string
	Cycles    []Cycle
}

func (e *CycleError) Error() string {
	if len(e.Cycles) > 0 {
		return fmt.Sprintf("graph has %d unordered node(s): %s", len(e.Remaining), e.Cycles[0].Message)
	}
	return fmt.Sprintf("graph has %d unordered node(s)", len(e.Remaining))
}

// TopoOrder returns every node such that each edge points forward in the
// result (Kahn's algorithm). Ties are broken by insertion order.
// If the graph has a cycle, the error is a *CycleError.
func TopoOrder(g *Graph) ([]string, error) {
	indegree := make([]int, len(g.names))
	for _, out := range g.edges {
		for _, t := range out {
			indegree[t]++
		}
	}

	queue := make([]int, 0, len(g.names))
	for id, d := range indegree {
		if d == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(g.names))
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		order = append(order, g.names[id])
		for _, t := range g.edges[id] {
			indegree[t]--
			if indegree[t] == 0 {
				queue = append(queue, t)
			}
		}
	}

	if len(order) == len(g.names) {
		return order, nil
	}

	var remaining []string
	for id, d := range indegree {
		if d > 0 {
			remaining = append(remaining, g.names[id])
		}
	}
	return nil, &CycleError{Remaining: remaining, Cycles: FindCycles(g)}
}

// formatPath renders a cycle path for messages.
func formatPath(path []string) string {
	return strings.Join(path, " → ")
}
