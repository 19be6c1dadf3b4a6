package settingvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{name: "true literal", raw: "true", want: Value{Kind: KindBool, Bool: true}},
		{name: "false literal", raw: "false", want: Value{Kind: KindBool, Bool: false}},
		{name: "integer", raw: "48", want: Value{Kind: KindNumber, Number: 48}},
		{name: "float", raw: "1.5", want: Value{Kind: KindNumber, Number: 1.5}},
		{name: "negative", raw: "-3", want: Value{Kind: KindNumber, Number: -3}},
		{name: "zero stays a number", raw: "0", want: Value{Kind: KindNumber, Number: 0}},
		{name: "padded number", raw: " 7 ", want: Value{Kind: KindNumber, Number: 7}},
		{name: "no stays a string", raw: "no", want: Value{Kind: KindString, Str: "no"}},
		{name: "mixed stays a string", raw: "48h", want: Value{Kind: KindString, Str: "48h"}},
		{name: "empty string", raw: "", want: Value{Kind: KindString, Str: ""}},
		{name: "whitespace only", raw: "   ", want: Value{Kind: KindString, Str: "   "}},
		// "True" не литерал: регистр значим, как и в исходном хранилище
		{name: "capitalized True", raw: "True", want: Value{Kind: KindString, Str: "True"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	assert.True(t, Parse("true").AsBool())
	assert.False(t, Parse("false").AsBool())
	assert.False(t, Parse("yes").AsBool())
	assert.False(t, Parse("1").AsBool())

	n, ok := Parse("48").AsFloat()
	require.True(t, ok)
	assert.Equal(t, 48.0, n)

	i, ok := Parse("3").AsInt()
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = Parse("fast").AsFloat()
	assert.False(t, ok)
}

func TestValue_String_RoundTrip(t *testing.T) {
	for _, raw := range []string{"true", "false", "48", "1.5", "no", "Permis B"} {
		assert.Equal(t, Parse(raw), Parse(Parse(raw).String()))
	}
}

func TestValue_JSON(t *testing.T) {
	m := map[string]Value{
		"worker_visibility_delay_hours":     Parse("48"),
		"worker_urgent_access_premium_only": Parse("true"),
		"greeting":                          Parse("hello"),
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"worker_visibility_delay_hours":48`)
	assert.Contains(t, string(data), `"worker_urgent_access_premium_only":true`)
	assert.Contains(t, string(data), `"greeting":"hello"`)

	var back map[string]Value
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}
