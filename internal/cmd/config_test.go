package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInitYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dbml.yaml")
	cmd := &ConfigInit{Command: "dbml", Format: "yaml", Output: dest}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "spec/schedule.yaml", parsed["input"])
	assert.Equal(t, "models/schedule.dbml", parsed["output"])
	assert.Equal(t, false, parsed["noOverwrite"])
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "json.toml")
	require.NoError(t, os.WriteFile(dest, []byte("existing"), 0o644))

	cmd := &ConfigInit{Command: "json", Format: "toml", Output: dest}
	assert.Error(t, cmd.Run())

	cmd.Force = true
	assert.NoError(t, cmd.Run())
}

func TestConfigInitFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "yaml", "toml"} {
		cmd := &ConfigInit{Command: "markdown", Format: format, Output: filepath.Join(dir, "markdown."+format)}
		require.NoError(t, cmd.Run(), format)

		info, err := os.Stat(filepath.Join(dir, "markdown."+format))
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}
