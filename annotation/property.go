package annotation

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	propertyDelimiter = ' '
	quote             = '"'
	keyValueSeparator = "="
	listSeparator     = ","
)

// ErrMalformedProperty is returned for a property token without a key=value separator.
var ErrMalformedProperty = errors.New("malformed property")

// Value is a property value. It is a plain string unless the raw value contained
// commas, in which case it is the ordered list of comma separated parts.
type Value struct {
	scalar string
	list   []string
}

// Scalar returns a single string value.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List returns a multi-valued value.
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{list: items}
}

func (v Value) IsList() bool {
	return v.list != nil
}

// Values returns the list items, or the scalar as a one item slice.
func (v Value) Values() []string {
	if v.IsList() {
		return v.list
	}
	return []string{v.scalar}
}

// String returns the scalar, or the list items joined by commas.
func (v Value) String() string {
	if v.IsList() {
		return strings.Join(v.list, listSeparator)
	}
	return v.scalar
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// Properties maps property names to values. A missing key and a key with an
// empty value are different things.
type Properties map[string]Value

// Get returns the value of key and whether the key is present.
func (p Properties) Get(key string) (Value, bool) {
	v, ok := p[key]
	return v, ok
}

func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the property names in lexical order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SplitProperties splits a property blob into its raw key=value tokens.
//
// Tokens are separated by spaces outside double quotes. Every quote character
// toggles the quoted state, so an unmatched quote swallows the rest of the blob:
// whatever follows it is never flushed as a token. Quotes are kept in the tokens
// and empty tokens are dropped.
func SplitProperties(text string) []string {
	text = strings.TrimSpace(text) + string(propertyDelimiter)

	var tokens []string
	quoted := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case quote:
			quoted = !quoted
		case propertyDelimiter:
			if quoted {
				continue
			}
			if i > start {
				tokens = append(tokens, text[start:i])
			}
			start = i + 1
		}
	}

	return tokens
}

// ParseValue turns a raw value into a Value. All double quotes are removed,
// not only the surrounding ones. If a comma is left the value becomes a list of
// the trimmed comma separated parts, even when the comma was quoted in the
// source.
func ParseValue(raw string) Value {
	raw = strings.ReplaceAll(raw, string(quote), "")
	if !strings.Contains(raw, listSeparator) {
		return Scalar(raw)
	}

	parts := strings.Split(raw, listSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return List(parts...)
}

// ParseProperties tokenizes a property blob and parses each key=value token.
// A later duplicate key overwrites an earlier one.
func ParseProperties(text string) (Properties, error) {
	props := Properties{}
	for _, token := range SplitProperties(text) {
		key, raw, ok := strings.Cut(token, keyValueSeparator)
		if !ok {
			return nil, errors.Wrapf(ErrMalformedProperty, "token %q has no %q", token, keyValueSeparator)
		}
		props[key] = ParseValue(raw)
	}
	return props, nil
}
