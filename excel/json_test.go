package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONEmployees(t *testing.T) {
	dir := t.TempDir()
	records := []*Record{record("id", int64(1), "name", "Ana", "tags", []interface{}{int64(1), int64(2)})}

	path, err := WriteJSON(records, dir, "employees", JSONOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "employees.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{
		{"id": float64(1), "name": "Ana", "tags": []interface{}{float64(1), float64(2)}},
	}, decode(t, data))

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"id\": 1,"), text)
	assert.Contains(t, text, "\"tags\": [\n      1,\n      2\n    ]")
	assert.NotContains(t, text, " \n")
	assert.Less(t, strings.Index(text, `"id"`), strings.Index(text, `"name"`))
	assert.Less(t, strings.Index(text, `"name"`), strings.Index(text, `"tags"`))
}

func TestWriteJSONSkipsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteJSON(nil, dir, "empty", JSONOptions{})
	require.NoError(t, err)
	assert.Empty(t, path)
	_, err = os.Stat(filepath.Join(dir, "empty.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteJSONOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0644))

	_, err := WriteJSON([]*Record{record("id", int64(7))}, dir, "items", JSONOptions{})
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{{"id": float64(7)}}, decode(t, data))
}

func TestMarshalRecordsUnwrapsListStrings(t *testing.T) {
	records := []*Record{
		record("names", "['a','b']", "nested", "[['x'], [1]]", "broken", "['a',", "plain", "[note] text"),
	}
	data, err := MarshalRecords(records, JSONOptions{})
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{{
		"names":  []interface{}{"a", "b"},
		"nested": []interface{}{[]interface{}{"x"}, []interface{}{float64(1)}},
		"broken": "['a',",
		"plain":  "[note] text",
	}}, decode(t, data))
	assert.NotContains(t, string(data), "'a','b'")

	// input records stay untouched
	v, _ := records[0].Get("names")
	assert.Equal(t, "['a','b']", v)
}

func TestMarshalRecordsKeepsTextLiteral(t *testing.T) {
	records := []*Record{record("name", "日本語", "html", "<b>&</b>", "quote", `say "hi"`)}
	data, err := MarshalRecords(records, JSONOptions{})
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "日本語")
	assert.Contains(t, text, "<b>&</b>")
	assert.Contains(t, text, `say \"hi\"`)
}

func TestMarshalRecordsLegacyFixup(t *testing.T) {
	records := []*Record{record("id", int64(1), "names", "['a','b']", "ids", []interface{}{int64(3)})}
	data, err := MarshalRecords(records, JSONOptions{LegacyFixup: true})
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{
		{"id": float64(1), "names": []interface{}{"a", "b"}, "ids": []interface{}{float64(3)}},
	}, decode(t, data))
	assert.NotContains(t, string(data), "'")
}

func TestLegacyFixupIsLossy(t *testing.T) {
	assert.Equal(t, `{"q": "say hi"}`, legacyFixup(`{"q": "say \"hi\""}`))
	assert.Equal(t, `["it"s"]`, legacyFixup(`["it's"]`))
}

func TestRecordMarshalJSON(t *testing.T) {
	r := record("b", int64(2), "a", nil, "c", true)
	r.Set("b", int64(3))
	data, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":3,"a":null,"c":true}`, string(data))
	assert.Equal(t, 3, r.Len())
}

func TestMarshalRecordsListOfDicts(t *testing.T) {
	sheet := sheetOf(
		[]Cell{str("id"), str("rewards")},
		[]Cell{str("id"), str("reward list")},
		[]Cell{num("1"), str("[{'id': 1, 'n': 2}, {'id': 5, 'n': 10}]")},
	)
	records := BuildRecords(sheet)
	require.Len(t, records, 1)

	expected := []map[string]interface{}{{
		"id": float64(1),
		"rewards": []interface{}{
			map[string]interface{}{"id": float64(1), "n": float64(2)},
			map[string]interface{}{"id": float64(5), "n": float64(10)},
		},
	}}
	for _, opts := range []JSONOptions{{}, {LegacyFixup: true}} {
		data, err := MarshalRecords(records, opts)
		require.NoError(t, err)
		assert.Equal(t, expected, decode(t, data), "legacy=%v", opts.LegacyFixup)
		assert.Less(t, strings.Index(string(data), `"id": 5`), strings.Index(string(data), `"n": 10`))
	}
}

func TestMarshalRecordsBigIntegers(t *testing.T) {
	records := BuildRecords(sheetOf(
		[]Cell{str("ids")},
		[]Cell{str("big ids")},
		[]Cell{str("[12345678901234567890, 1]")},
	))
	data, err := MarshalRecords(records, JSONOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "12345678901234567890")
	assert.NotContains(t, string(data), `"[`)
}
