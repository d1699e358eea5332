package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/mpqa/annotation"
	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/layout"
	"github.com/revelaction/mpqa/span"
)

func TestAggregate(t *testing.T) {
	text := "They love the new bridge. It rains."
	sentences := []span.Span{{Start: 0, End: 25}, {Start: 26, End: 35}}
	rows := [][]string{
		{"1", "5,9", "string", "GATE_attitude", `id="a1" target-link="t1" attitude-type="sentiment-pos"`},
		{"2", "18,24", "string", "GATE_target", `id="t1"`},
		{"3", "5,9", "string", "GATE_direct-subjective", `intensity="high"`},
		{"4", "0,35", "string", "GATE_inside"},
		{"5", "20,30", "string", "GATE_agent", `id="w"`},
	}

	var anns annotation.Annotations
	for _, row := range rows {
		a, ok, err := annotation.ParseRow(row, sentences, layout.For("2.0"))
		require.NoError(t, err)
		require.True(t, ok)
		anns = append(anns, a)
	}

	h := NewHandler()
	h.Aggregate(document.New(text, sentences, anns, "f"))
	h.Aggregate(document.New("x", []span.Span{{Start: 0, End: 1}}, nil, "g"))

	s := h.Get()
	assert.Equal(t, 2, s.NumDocs)
	assert.Equal(t, 3, s.NumSentences)
	assert.Equal(t, 5, s.NumAnnotations)
	assert.Equal(t, 1, s.NumNoProperties)
	assert.Equal(t, 1, s.NumUnresolved)
	assert.Equal(t, 1, s.NumSubjective)
	assert.Equal(t, 2, s.NumObjective)
	assert.Equal(t, 1, s.NumAttitudeTargets)
	assert.Equal(t, 0, s.NumEntitySentiments)

	assert.Equal(t, []string{"GATE_agent", "GATE_attitude", "GATE_direct-subjective", "GATE_inside", "GATE_target"}, s.Kinds())
	assert.Equal(t, 1, s.AnnotationsPerKind["GATE_attitude"])
}
