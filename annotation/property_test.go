package annotation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitProperties(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "plain tokens",
			in:   `key1=val1 key2=val2`,
			want: []string{"key1=val1", "key2=val2"},
		},
		{
			name: "quoted value with spaces",
			in:   `key1=val1 key2="a b,c" key3=d`,
			want: []string{"key1=val1", `key2="a b,c"`, "key3=d"},
		},
		{
			name: "consecutive delimiters are dropped",
			in:   `  a=1    b=2  `,
			want: []string{"a=1", "b=2"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			// the quote opened in b never closes, so the rest is swallowed
			name: "unmatched quote",
			in:   `a=1 b="x y c=3`,
			want: []string{"a=1"},
		},
		{
			name: "quote re-balanced later",
			in:   `a="x b=" c=3`,
			want: []string{`a="x b="`, "c=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitProperties(tt.in))
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, Scalar("high"), ParseValue(`"high"`))
	assert.Equal(t, Scalar("high"), ParseValue(`high`))
	assert.Equal(t, Scalar("say so"), ParseValue(`"say" "so"`), "interior quotes are stripped too")
	assert.Equal(t, List("w", "imp"), ParseValue(`"w, imp"`))
	assert.Equal(t, Scalar(""), ParseValue(`""`))
}

func TestParseProperties(t *testing.T) {
	props, err := ParseProperties(`key1=val1 key2="a b,c" key3=d`)
	require.NoError(t, err)

	assert.Equal(t, Properties{
		"key1": Scalar("val1"),
		// A quoted comma still splits: "a b,c" is indistinguishable from a list.
		"key2": List("a b", "c"),
		"key3": Scalar("d"),
	}, props)
}

func TestParsePropertiesEmptyValue(t *testing.T) {
	props, err := ParseProperties(`insubstantial=""`)
	require.NoError(t, err)

	v, ok := props.Get("insubstantial")
	assert.True(t, ok, "an empty value is still present")
	assert.Equal(t, "", v.String())
	assert.False(t, props.Has("intensity"))
}

func TestParsePropertiesMissingSeparator(t *testing.T) {
	_, err := ParseProperties(`id=a1 orphan`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedProperty))
}

func TestValue(t *testing.T) {
	l := List("t1", "t2")
	assert.True(t, l.IsList())
	assert.Equal(t, []string{"t1", "t2"}, l.Values())
	assert.Equal(t, "t1,t2", l.String())

	s := Scalar("t1")
	assert.False(t, s.IsList())
	assert.Equal(t, []string{"t1"}, s.Values())
}
