package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestRecordOrder(t *testing.T) {
	r := NewRecord("b", 1, "a", 2)
	r.Set("c", 3)
	r.Set("b", 4)

	assert.Equal(t, []string{"b", "a", "c"}, r.Keys())
	assert.Equal(t, 4, r.Get("b"))
	assert.Equal(t, 3, r.Len())

	r.Delete("a")
	r.Delete("missing")
	assert.Equal(t, []string{"b", "c"}, r.Keys())
	assert.False(t, r.Has("a"))
	assert.Nil(t, r.Get("a"))
	assert.Equal(t, map[string]interface{}{"b": 4, "c": 3}, r.Map())
}

func TestRecordNilValues(t *testing.T) {
	r := NewRecord("a", nil, "b")
	assert.True(t, r.Has("a"))
	assert.True(t, r.Has("b"))
	assert.Nil(t, r.Get("b"))
}

func TestRecordZeroValue(t *testing.T) {
	var r Record
	r.Set("a", 1)
	assert.Equal(t, []string{"a"}, r.Keys())

	var nilRec *Record
	assert.Nil(t, nilRec.Get("a"))
	assert.False(t, nilRec.Has("a"))
	assert.Equal(t, 0, nilRec.Len())
	assert.Empty(t, nilRec.Map())
}

func TestNewRecordPanicsOnBadKey(t *testing.T) {
	assert.Panics(t, func() { NewRecord(1, "a") })
}

func TestRecordFromMap(t *testing.T) {
	r := RecordFromMap(map[string]interface{}{"z": 1, "a": 2, "m": 3})
	assert.Equal(t, []string{"a", "m", "z"}, r.Keys())
}

func TestRecordYAML(t *testing.T) {
	out, err := yaml.Marshal(NewRecord("b", 1, "a", "x"))
	require.NoError(t, err)
	assert.Equal(t, "b: 1\na: x\n", string(out))

	var records []*Record
	require.NoError(t, yaml.Unmarshal([]byte("- z: 1\n  a: two\n- 3: x\n"), &records))
	require.Len(t, records, 2)

	assert.Equal(t, []string{"z", "a"}, records[0].Keys())
	assert.Equal(t, 1, records[0].Get("z"))
	assert.Equal(t, "two", records[0].Get("a"))
	assert.Equal(t, "x", records[1].Get("3"))
}
