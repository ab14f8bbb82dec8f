package hashbidimap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSerialization(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		m := New[string, int]()
		require.NoError(t, m.Insert("a", 1))
		require.NoError(t, m.Insert("b", 2))

		data, err := m.ToJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1,"b":2}`, string(data))

		loaded := New[string, int]()
		require.NoError(t, loaded.FromJSON(data))
		assert.True(t, loaded.IsPaired("a", 1))
		assert.True(t, loaded.IsPaired("b", 2))
		requireBijection(t, loaded)
	})

	t.Run("JSONIntegerKeys", func(t *testing.T) {
		m := New[int, string]()
		require.NoError(t, m.Insert(7, "seven"))

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"7":"seven"}`, string(data))

		var loaded Map[int, string]
		require.NoError(t, json.Unmarshal(data, &loaded))
		k, ok := loaded.GetByValue("seven")
		assert.True(t, ok)
		assert.Equal(t, 7, k)
	})

	t.Run("YAML", func(t *testing.T) {
		m := New[string, string]()
		require.NoError(t, m.Insert("Foo", "Bar"))
		require.NoError(t, m.Insert("Baz", "Baz"))

		data, err := m.ToYAML()
		require.NoError(t, err)
		assert.YAMLEq(t, "Foo: Bar\nBaz: Baz\n", string(data))

		loaded := New[string, string]()
		require.NoError(t, loaded.FromYAML(data))
		assert.True(t, loaded.IsPaired("Foo", "Bar"))
		assert.True(t, loaded.IsPaired("Baz", "Baz"))
		requireBijection(t, loaded)
	})

	t.Run("ReplacesContent", func(t *testing.T) {
		m := New[string, int]()
		require.NoError(t, m.Insert("old", 0))

		require.NoError(t, m.FromJSON([]byte(`{"new":1}`)))
		assert.False(t, m.ContainsKey("old"))
		assert.False(t, m.ContainsValue(0))
		assert.True(t, m.IsPaired("new", 1))
	})

	t.Run("DuplicateValueRejected", func(t *testing.T) {
		m := New[string, int]()
		require.NoError(t, m.Insert("keep", 9))

		err := m.FromJSON([]byte(`{"a":1,"b":1}`))
		require.ErrorIs(t, err, ErrInsert)
		assert.Equal(t, 1, m.Size())
		assert.True(t, m.IsPaired("keep", 9))

		err = m.FromYAML([]byte("a: 1\nb: 1\n"))
		require.ErrorIs(t, err, ErrInsert)
		assert.True(t, m.IsPaired("keep", 9))
	})

	t.Run("MalformedInput", func(t *testing.T) {
		m := New[string, int]()
		require.NoError(t, m.Insert("keep", 9))

		err := m.FromJSON([]byte(`{"a":`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInsert)

		err = m.FromJSON([]byte(`{"a":"not a number"}`))
		require.Error(t, err)

		err = m.FromYAML([]byte("a: [1\n"))
		require.Error(t, err)

		assert.Equal(t, 1, m.Size())
		assert.True(t, m.IsPaired("keep", 9))
	})
}
