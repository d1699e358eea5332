package annotation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/mpqa/layout"
	"github.com/revelaction/mpqa/span"
)

func TestIntensiveDirectSubjective(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		props Properties
		want  bool
	}{
		{"high", "direct-subjective", Properties{"intensity": Scalar("high")}, true},
		{"gate spelling", "GATE_direct-subjective", Properties{"intensity": Scalar("medium")}, true},
		{"low", "direct-subjective", Properties{"intensity": Scalar("low")}, false},
		{"neutral", "direct-subjective", Properties{"intensity": Scalar("neutral")}, false},
		{"no intensity", "direct-subjective", Properties{}, false},
		{"insubstantial", "direct-subjective", Properties{"intensity": Scalar("high"), "insubstantial": Scalar("yes")}, false},
		{"insubstantial empty", "direct-subjective", Properties{"intensity": Scalar("high"), "insubstantial": Scalar("")}, false},
		{"other kind", "attitude", Properties{"intensity": Scalar("high")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Annotation{Kind: tt.kind, Properties: tt.props}
			assert.Equal(t, tt.want, a.IsIntensiveDirectSubjective())
		})
	}
}

func TestIntensiveExpressiveSubjectivity(t *testing.T) {
	tests := []struct {
		name  string
		props Properties
		want  bool
	}{
		{"medium", Properties{"intensity": Scalar("medium")}, true},
		{"neutral counts", Properties{"intensity": Scalar("neutral")}, true},
		{"insubstantial ignored", Properties{"intensity": Scalar("high"), "insubstantial": Scalar("yes")}, true},
		{"low", Properties{"intensity": Scalar("low")}, false},
		{"no intensity", Properties{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Annotation{Kind: "GATE_expressive-subjectivity", Properties: tt.props}
			assert.Equal(t, tt.want, a.IsIntensiveExpressiveSubjectivity())
		})
	}
}

func TestIsEntityTarget(t *testing.T) {
	assert.True(t, Annotation{Kind: "eTarget", Properties: Properties{"type": Scalar("entity")}}.IsEntityTarget())
	assert.False(t, Annotation{Kind: "eTarget", Properties: Properties{"type": Scalar("event")}}.IsEntityTarget())
	assert.False(t, Annotation{Kind: "eTarget"}.IsEntityTarget())
	assert.False(t, Annotation{Kind: "sTarget", Properties: Properties{"type": Scalar("entity")}}.IsEntityTarget())
}

func TestParseRow(t *testing.T) {
	sentences := []span.Span{{Start: 0, End: 10}, {Start: 11, End: 20}}
	l := layout.For("2.0")

	a, ok, err := ParseRow([]string{"42", "12,15", "string", "GATE_direct-subjective", `intensity="high" nested-source="w, imp"`}, sentences, l)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 42, a.Index)
	assert.Equal(t, span.Span{Start: 12, End: 15}, a.Span)
	assert.Equal(t, "GATE_direct-subjective", a.Kind)
	assert.Equal(t, "high", a.Property(PropIntensity, "-"))
	assert.Equal(t, List("w", "imp"), a.Properties["nested-source"])

	s, found := a.Enclosing()
	require.True(t, found)
	assert.Equal(t, span.Span{Start: 11, End: 20}, s)
}

func TestParseRowLayout30(t *testing.T) {
	a, ok, err := ParseRow([]string{"7", "2,5", "attitude", `id="a1"`}, []span.Span{{Start: 0, End: 10}}, layout.For("3.0"))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "attitude", a.Kind)
	id, ok := a.ID()
	assert.True(t, ok)
	assert.Equal(t, "a1", id)
}

func TestParseRowWithoutProperties(t *testing.T) {
	// The span lies inside a sentence, but rows without a property field are
	// never resolved.
	a, ok, err := ParseRow([]string{"1", "2,5", "string", "GATE_sentence"}, []span.Span{{Start: 0, End: 10}}, layout.For("2.0"))
	require.NoError(t, err)
	require.True(t, ok)

	assert.False(t, a.HasProperties())
	assert.Nil(t, a.Sentence)
}

func TestParseRowEmptyPropertyField(t *testing.T) {
	a, ok, err := ParseRow([]string{"1", "2,5", "string", "GATE_inside", ""}, []span.Span{{Start: 0, End: 10}}, layout.For("2.0"))
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, a.HasProperties())
	assert.NotNil(t, a.Sentence)
}

func TestParseRowNoEnclosingSentence(t *testing.T) {
	a, ok, err := ParseRow([]string{"3", "20,25", "string", "GATE_attitude", "id=a1"}, []span.Span{{Start: 0, End: 20}}, layout.For("2.0"))
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, a.HasProperties())
	_, found := a.Enclosing()
	assert.False(t, found)
}

func TestParseRowComment(t *testing.T) {
	_, ok, err := ParseRow([]string{"  # annotation file", "x"}, nil, layout.For("2.0"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseRowErrors(t *testing.T) {
	l := layout.For("2.0")
	tests := []struct {
		name     string
		row      []string
		sentinel error
	}{
		{"empty", []string{}, ErrMalformedRow},
		{"too short", []string{"1", "2,5", "string"}, ErrMalformedRow},
		{"bad index", []string{"x", "2,5", "string", "GATE_attitude"}, ErrMalformedRow},
		{"bad span", []string{"1", "2;5", "string", "GATE_attitude"}, span.ErrMalformedSpan},
		{"bad property", []string{"1", "2,5", "string", "GATE_attitude", "id"}, ErrMalformedProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRow(tt.row, nil, l)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), err.Error())
		})
	}
}

func TestEnclosingSentenceFirstMatch(t *testing.T) {
	overlapping := []span.Span{{Start: 0, End: 30}, {Start: 5, End: 20}}

	s, ok := EnclosingSentence(span.Span{Start: 6, End: 10}, overlapping)
	require.True(t, ok)
	assert.Equal(t, span.Span{Start: 0, End: 30}, s)

	_, ok = EnclosingSentence(span.Span{Start: 25, End: 40}, overlapping)
	assert.False(t, ok)
}
