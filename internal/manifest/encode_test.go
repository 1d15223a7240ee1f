package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/synth"
)

func TestEncode_Golden(t *testing.T) {
	m, err := Build(testDefinitions(), twoSourceProject(), testLayout())
	require.NoError(t, err)

	data, err := Marshal(m)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "two_sources", data)
}

func TestEncode_InvalidWritesNothing(t *testing.T) {
	m := validManifest()
	m.Actions[2].Inputs = m.Actions[2].Inputs[:1]

	var buf bytes.Buffer
	err := Encode(&buf, m)
	require.ErrorIs(t, err, ErrInvariant)
	assert.Zero(t, buf.Len(), "invalid manifests must not be produced")
}

func TestEncode_NormalizesValues(t *testing.T) {
	m := validManifest()
	// "e" followed by a combining acute accent composes to U+00E9.
	m.Definitions[0].Value = "cafe\u0301"

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "DEF|cxx|caf\u00e9\n"))
}

func TestEncode_NormalizationCollidingArtifacts(t *testing.T) {
	decomposed := "build/cafe\u0301.cpp.o"
	composed := "build/caf\u00e9.cpp.o"
	m := &ir.Manifest{
		Definitions: []ir.Definition{{Key: "cxx", Value: "clang++"}},
		Actions: []ir.Action{
			{Kind: ir.KindCompile, Inputs: []string{"src/a.cpp"}, Output: decomposed},
			{Kind: ir.KindCompile, Inputs: []string{"src/b.cpp"}, Output: composed},
			{Kind: ir.KindLink, Inputs: []string{decomposed, composed}, Output: "build/app"},
		},
	}
	require.NoError(t, Check(m), "raw fields are distinct")

	var buf bytes.Buffer
	err := Encode(&buf, m)
	require.ErrorIs(t, err, ErrInvariant)

	var ie *InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "unique-artifact", ie.Rule)
	assert.Zero(t, buf.Len())
	assert.Equal(t, decomposed, m.Actions[0].Output, "the input manifest is not modified")
}

func TestEncode_LinkIsLastLine(t *testing.T) {
	m, err := Build(testDefinitions(), twoSourceProject(), testLayout())
	require.NoError(t, err)
	data, err := Marshal(m)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "ld|"))
	for _, l := range lines[:len(lines)-1] {
		assert.False(t, strings.HasPrefix(l, "ld|"))
	}
}

// TestRoundTrip generates projects, encodes them, and parses the result
// back: there must be M+1 compile lines and one link line whose artifacts
// match the compile outputs in order.
func TestRoundTrip(t *testing.T) {
	for _, tc := range []synth.Params{
		{Headers: 0, Sources: 0, HeaderFanIn: 3, SourceFanIn: 10},
		{Headers: 5, Sources: 2, HeaderFanIn: 3, SourceFanIn: 10},
		{Headers: 100, Sources: 250, HeaderFanIn: 3, SourceFanIn: 10},
	} {
		project, err := synth.Generate(tc, synth.NewSampler(77))
		require.NoError(t, err)

		m, err := Build(testDefinitions(), project, testLayout())
		require.NoError(t, err)
		data, err := Marshal(m)
		require.NoError(t, err)

		parsed, err := Parse(bytes.NewReader(data))
		require.NoError(t, err)
		require.NoError(t, Check(parsed))

		assert.Equal(t, m.Definitions, parsed.Definitions)

		sum := Summarize(parsed)
		assert.Equal(t, tc.Sources+1, sum.CompileActions)
		assert.Equal(t, 1, sum.LinkActions)
		assert.Equal(t, tc.Sources+1, sum.Artifacts)

		var outputs []string
		for _, a := range parsed.CompileActions() {
			outputs = append(outputs, a.Output)
		}
		assert.Equal(t, outputs, parsed.Actions[len(parsed.Actions)-1].Inputs)
		assert.Equal(t, m.Actions, parsed.Actions)
	}
}
