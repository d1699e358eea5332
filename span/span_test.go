package span

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Span
		wantErr bool
	}{
		{name: "simple", in: "0,10", want: Span{0, 10}},
		{name: "whitespace", in: " 12 , 40 ", want: Span{12, 40}},
		{name: "zero length", in: "7,7", want: Span{7, 7}},
		{name: "single part", in: "12", wantErr: true},
		{name: "three parts", in: "1,2,3", wantErr: true},
		{name: "non numeric", in: "a,b", wantErr: true},
		{name: "empty right", in: "1,", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedSpan))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, in := range []string{"0,0", "5,15", "1024,2048"} {
		s, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, in, s.String())
	}
}

func TestContains(t *testing.T) {
	sentence := Span{0, 20}

	assert.True(t, sentence.Contains(Span{5, 15}))
	assert.True(t, sentence.Contains(Span{0, 20}), "both ends are inclusive")
	assert.False(t, sentence.Contains(Span{20, 25}))
	assert.False(t, sentence.Contains(Span{15, 21}))
}

func TestRelative(t *testing.T) {
	sentence := Span{11, 20}
	assert.Equal(t, Span{2, 5}, sentence.Relative(Span{13, 16}))
}

func TestText(t *testing.T) {
	text := []rune("Él dijo que sí.")

	assert.Equal(t, "Él", Span{0, 2}.Text(text))
	assert.Equal(t, "sí.", Span{12, 15}.Text(text))
	assert.Equal(t, "sí.", Span{12, 99}.Text(text), "end is clamped")
	assert.Equal(t, "", Span{9, 3}.Text(text))
}
