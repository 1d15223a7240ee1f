package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/cbegen/internal/ir"
)

func TestNodeIsIdempotent(t *testing.T) {
	g := New()
	a := g.Node("a")
	assert.Equal(t, a, g.Node("a"))
	assert.Equal(t, 1, g.Len())
}

func TestFromHeaders(t *testing.T) {
	headers := []ir.HeaderUnit{
		{Index: 0},
		{Index: 1, Deps: []int{0}},
		{Index: 2, Deps: []int{1, 0}},
	}
	g := FromHeaders(headers)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"header_1.hpp", "header_2.hpp"}, g.Successors("header_0.hpp"))
	assert.Nil(t, g.Successors("header_9.hpp"))
}

func TestFromManifest(t *testing.T) {
	m := &ir.Manifest{Actions: []ir.Action{
		{Kind: ir.KindCompile, Inputs: []string{"src/a.cpp"}, Output: "build/a.cpp.o"},
		{Kind: ir.KindCompile, Inputs: []string{"src/main.cpp"}, Output: "build/main.cpp.o"},
		{Kind: ir.KindLink, Inputs: []string{"build/a.cpp.o", "build/main.cpp.o"}, Output: "build/app"},
	}}
	g := FromManifest(m)

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []string{"build/app"}, g.Successors("build/a.cpp.o"))
}
