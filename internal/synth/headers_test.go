package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cbegen/internal/graph"
)

func TestGenerateHeaders_SingleHeaderHasNoDeps(t *testing.T) {
	headers := GenerateHeaders(1, 3, NewSampler(1))

	require.Len(t, headers, 1)
	assert.Equal(t, 0, headers[0].Index)
	assert.Empty(t, headers[0].Deps, "fan-in 3 clamps to 0 for header 0")
}

func TestGenerateHeaders_FifthHeader(t *testing.T) {
	headers := GenerateHeaders(5, 3, NewSampler(2))
	require.Len(t, headers, 5)

	deps := headers[4].Deps
	require.Len(t, deps, 3)
	assert.Subset(t, []int{0, 1, 2, 3}, deps)
	assert.NotEqual(t, deps[0], deps[1])
	assert.NotEqual(t, deps[0], deps[2])
	assert.NotEqual(t, deps[1], deps[2])
}

func TestGenerateHeaders_FanInIsClamped(t *testing.T) {
	for _, k := range []int{0, 1, 3, 8} {
		headers := GenerateHeaders(40, k, NewSampler(uint64(k)+10))
		for i, h := range headers {
			assert.Equal(t, i, h.Index)
			assert.Len(t, h.Deps, min(i, k), "header %d with fan-in %d", i, k)
		}
	}
}

func TestGenerateHeaders_DepsPointBackwards(t *testing.T) {
	headers := GenerateHeaders(200, 5, NewSampler(3))
	for _, h := range headers {
		seen := make(map[int]bool)
		for _, d := range h.Deps {
			assert.GreaterOrEqual(t, d, 0)
			assert.Less(t, d, h.Index, "header %d depends on %d", h.Index, d)
			assert.False(t, seen[d], "header %d repeats dependency %d", h.Index, d)
			seen[d] = true
		}
	}
}

func TestGenerateHeaders_Acyclic(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		headers := GenerateHeaders(300, 4, NewSampler(seed))
		g := graph.FromHeaders(headers)

		order, err := graph.TopoOrder(g)
		require.NoError(t, err)
		assert.Len(t, order, len(headers))
		assert.Empty(t, graph.FindCycles(g))
	}
}

func TestGenerateHeaders_Empty(t *testing.T) {
	assert.Empty(t, GenerateHeaders(0, 3, NewSampler(1)))
}
