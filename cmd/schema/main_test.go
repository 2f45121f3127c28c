package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, writeSchema(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "#/$defs/Config", schema["$ref"])
	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Config", "ServerConfig", "FootballConfig", "NewsConfig", "ScheduleConfig"} {
		assert.Contains(t, defs, name)
	}
}

func TestWriteSchema_BadPath(t *testing.T) {
	err := writeSchema(filepath.Join(t.TempDir(), "no-such-dir", "schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write schema file")
}
