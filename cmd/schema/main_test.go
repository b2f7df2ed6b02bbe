package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	var out bytes.Buffer
	require.NoError(t, generate(path, &out))
	assert.Contains(t, out.String(), "schema for 6 config sections written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Contains(t, schema, "$defs")
}

func TestGenerate_Stdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, generate("-", &out))
	assert.Contains(t, out.String(), `"Config"`)
	assert.Contains(t, out.String(), `"refresh_feeds"`)
}

func TestGenerate_BadPath(t *testing.T) {
	err := generate(filepath.Join(t.TempDir(), "missing", "schema.json"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write schema file")
}
