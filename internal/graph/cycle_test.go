package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindCycles_Empty tests that an empty graph produces no cycles.
func TestFindCycles_Empty(t *testing.T) {
	assert.Empty(t, FindCycles(New()))
}

// TestFindCycles_DAG tests that a directed acyclic graph produces no cycles.
func TestFindCycles_DAG(t *testing.T) {
	g := New()
	g.AddEdge("header_0.hpp", "header_1.hpp")
	g.AddEdge("header_0.hpp", "header_2.hpp")
	g.AddEdge("header_1.hpp", "header_2.hpp")

	assert.Empty(t, FindCycles(g), "DAG should produce no cycles")
}

// TestFindCycles_SelfLoop tests detection of a node depending on itself.
func TestFindCycles_SelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("header_3.hpp", "header_3.hpp")

	cycles := FindCycles(g)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"header_3.hpp", "header_3.hpp"}, cycles[0].Path)
}

// TestFindCycles_ThreeNode tests a cycle spanning several nodes.
func TestFindCycles_ThreeNode(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	g.AddEdge("c", "d")

	cycles := FindCycles(g)
	require.Len(t, cycles, 1)

	path := cycles[0].Path
	require.Len(t, path, 4)
	assert.Equal(t, path[0], path[len(path)-1], "cycle path must return to its start")
	assert.ElementsMatch(t, []string{"a", "b", "c"}, path[:3])
	assert.Contains(t, cycles[0].Message, "→")
}

// TestFindCycles_Disjoint tests that independent cycles are all reported.
func TestFindCycles_Disjoint(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("x", "y")
	g.AddEdge("y", "x")

	assert.Len(t, FindCycles(g), 2)
}
