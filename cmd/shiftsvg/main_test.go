package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vodvud/shift-svg/shift"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	require.NoError(t, renderCmd.Flags().Set("output", ""))
	require.NoError(t, rootCmd.PersistentFlags().Set("catalog", ""))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderToStdout(t *testing.T) {
	out, err := execute(t, "render", "am_pm")
	require.NoError(t, err)

	want, err := shift.NewRenderer(nil).RenderKey("am_pm")
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.svg")

	_, err := execute(t, "render", "night", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := shift.NewRenderer(nil).RenderKey("night")
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestRenderUnknownKeyToFile(t *testing.T) {
	_, err := execute(t, "render", "nope", "-o", filepath.Join(t.TempDir(), "icon.svg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known token")
}

func TestRenderWithCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x:\n  fill: \"#123456\"\n  text: X\n"), 0o644))

	out, err := execute(t, "render", "x_am", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, `fill="#123456"`)
	assert.NotContains(t, out, "#bd3e75")
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	for _, token := range shift.Default.Tokens() {
		assert.Contains(t, out, token)
	}
	assert.Contains(t, out, "#bd3e75")
}

func TestPersistentFlagsReachConfig(t *testing.T) {
	_, err := execute(t, "catalog", "--log-level", "debug", "--log-json")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)

	require.NoError(t, rootCmd.PersistentFlags().Set("log-level", "info"))
	require.NoError(t, rootCmd.PersistentFlags().Set("log-json", "false"))
}
