package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarterEntry_NestedListShape(t *testing.T) {
	src := `[[{"_tpl":"rouble","count":5},{"_tpl":"dollar","count":2}],[{"_tpl":"bandage","count":1}]]`

	var entry BarterEntry
	require.NoError(t, json.Unmarshal([]byte(src), &entry))

	require.Len(t, entry.Elems, 2)
	require.Len(t, entry.Elems[0].Group, 2)
	require.Len(t, entry.Elems[1].Group, 1)
	assert.Nil(t, entry.Elems[0].Single)
	assert.Equal(t, "rouble", entry.Elems[0].Group[0].Tpl)
	assert.Equal(t, 5.0, entry.Elems[0].Group[0].Count)
	assert.True(t, entry.Elems[0].Group[0].HasCount)

	// Round-trip keeps the nested shape
	out, err := json.Marshal(entry)
	require.NoError(t, err)
	var reparsed BarterEntry
	require.NoError(t, json.Unmarshal(out, &reparsed))
	require.Len(t, reparsed.Elems, 2)
	assert.NotNil(t, reparsed.Elems[0].Group)
}

func TestBarterEntry_FlatListShape(t *testing.T) {
	src := `[{"_tpl":"rouble","count":3},{"_tpl":"salewa","count":1.5}]`

	var entry BarterEntry
	require.NoError(t, json.Unmarshal([]byte(src), &entry))

	require.Len(t, entry.Elems, 2)
	require.NotNil(t, entry.Elems[0].Single)
	assert.Nil(t, entry.Elems[0].Group)
	assert.Equal(t, 1.5, entry.Elems[1].Single.Count)

	out, err := json.Marshal(entry)
	require.NoError(t, err)
	var reparsed BarterEntry
	require.NoError(t, json.Unmarshal(out, &reparsed))
	require.Len(t, reparsed.Elems, 2)
	assert.NotNil(t, reparsed.Elems[0].Single)
}

func TestBarterEntry_KeyedMapShape(t *testing.T) {
	src := `{"a":{"_tpl":"rouble","count":10},"b":{"_tpl":"dollar","count":4}}`

	var entry BarterEntry
	require.NoError(t, json.Unmarshal([]byte(src), &entry))

	require.NotNil(t, entry.Keyed)
	assert.Nil(t, entry.Elems)
	assert.Equal(t, 10.0, entry.Keyed["a"].Count)

	out, err := json.Marshal(entry)
	require.NoError(t, err)
	var reparsed BarterEntry
	require.NoError(t, json.Unmarshal(out, &reparsed))
	require.NotNil(t, reparsed.Keyed)
	assert.Equal(t, "dollar", reparsed.Keyed["b"].Tpl)
}

func TestBarterEntry_MixedArrayElements(t *testing.T) {
	// A group next to a bare requirement in the same array
	src := `[[{"_tpl":"rouble","count":5}],{"_tpl":"dollar","count":2}]`

	var entry BarterEntry
	require.NoError(t, json.Unmarshal([]byte(src), &entry))

	require.Len(t, entry.Elems, 2)
	assert.NotNil(t, entry.Elems[0].Group)
	assert.NotNil(t, entry.Elems[1].Single)
}

func TestBarterRequirement_MissingCount(t *testing.T) {
	var req BarterRequirement
	require.NoError(t, json.Unmarshal([]byte(`{"_tpl":"rouble"}`), &req))
	assert.False(t, req.HasCount)

	require.NoError(t, json.Unmarshal([]byte(`{"_tpl":"rouble","count":"five"}`), &req))
	assert.False(t, req.HasCount)
}

func TestBarterRequirement_PreservesUnknownFields(t *testing.T) {
	src := `{"_tpl":"salewa","count":2,"onlyFunctional":true,"level":3}`

	var req BarterRequirement
	require.NoError(t, json.Unmarshal([]byte(src), &req))

	req.SetCount(6)

	out, err := json.Marshal(&req)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, 6.0, back["count"])
	assert.Equal(t, true, back["onlyFunctional"])
	assert.Equal(t, 3.0, back["level"])
}
