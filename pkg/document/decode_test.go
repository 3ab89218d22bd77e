package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildmatch/wildmatch/pkg/wild"
)

func TestDecodeJSON(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"name": "alice", "tags": ["a", "b"], "age": 30}`))
	require.NoError(t, err)

	assert.True(t, wild.Match(map[string]any{
		"name": "alice",
		"tags": []any{"a", "b"},
		"age":  30,
	}, v))
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	v, err := DecodeYAML([]byte("name: alice\ntags:\n  - a\n  - b\nage: 30\n"))
	require.NoError(t, err)

	assert.True(t, wild.Match(map[string]any{
		"name": "alice",
		"tags": []any{"a", "b"},
		"age":  30,
	}, v))
}

func TestDecodeYAMLInvalid(t *testing.T) {
	_, err := DecodeYAML([]byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"a": 1}`), 0o644))
	yamlPath := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("a: 1\n"), 0o644))

	jv, err := DecodeFile(jsonPath)
	require.NoError(t, err)
	yv, err := DecodeFile(yamlPath)
	require.NoError(t, err)

	pattern := map[string]any{"a": 1}
	assert.True(t, wild.Match(pattern, jv, yv))

	_, err = DecodeFile(filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"status": "*", "codes": {"$set": [1, 2]}}`), 0o644))

	v, err := Load(path, DefaultOptions())
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.True(t, wild.IsWildcard(m["status"]))

	s, err := wild.AsSet(m["codes"])
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}
