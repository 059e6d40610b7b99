package jsonval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_LeafPriority(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"bool not string", `true`, KindBool},
		{"string stays string", `"true"`, KindString},
		{"int not float", `42`, KindInt},
		{"fractional is float", `42.5`, KindFloat},
		{"exponent is float", `1e3`, KindFloat},
		{"numeric string stays string", `"42"`, KindString},
		{"null", `null`, KindNull},
		{"object", `{"a":1}`, KindObject},
		{"array", `[1,2]`, KindArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
		})
	}
}

func TestDecode_Nested(t *testing.T) {
	v, err := Decode([]byte(`{"name":"store","active":true,"count":3,"rate":0.5,"tags":["a","b"],"meta":{"id":null}}`))
	require.NoError(t, err)

	obj, ok := v.ObjectValue()
	require.True(t, ok)

	name, _ := obj["name"].StringValue()
	assert.Equal(t, "store", name)

	count, ok := obj["count"].IntValue()
	require.True(t, ok, "count must decode as int, not float")
	assert.EqualValues(t, 3, count)

	rate, ok := obj["rate"].FloatValue()
	require.True(t, ok)
	assert.Equal(t, 0.5, rate)

	tags, ok := obj["tags"].ArrayValue()
	require.True(t, ok)
	assert.Len(t, tags, 2)

	meta, ok := obj["meta"].ObjectValue()
	require.True(t, ok)
	assert.Equal(t, KindNull, meta["id"].Kind())
}

func TestDecodeObject_RejectsNonObject(t *testing.T) {
	_, err := DecodeObject([]byte(`[1,2]`))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	in := []byte(`{"a":1,"b":"x","c":[true,null],"d":{"e":2.5}}`)
	v, err := Decode(in)
	require.NoError(t, err)

	out, err := json.Marshal(v)
	require.NoError(t, err)

	back, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, v.Equal(back))
}

func TestObject_SameKeys(t *testing.T) {
	a := Object{"x": Int(1), "y": String("a")}
	b := Object{"x": Int(99), "y": Null()}
	c := Object{"x": Int(1), "z": String("a")}

	assert.True(t, a.SameKeys(b))
	assert.False(t, a.SameKeys(c))
	assert.False(t, a.SameKeys(Object{"x": Int(1)}))
}

func TestValue_Equal(t *testing.T) {
	a, err := Decode([]byte(`{"a":[1,2,{"b":true}]}`))
	require.NoError(t, err)
	b, err := Decode([]byte(`{"a":[1,2,{"b":true}]}`))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := Decode([]byte(`{"a":[1,2,{"b":false}]}`))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}
