package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styleguide.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestInitDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	chdir(t, t.TempDir())

	require.NoError(t, Init())
	assert.Equal(t, 12240, GetInt("page.width"))
	assert.Equal(t, 9360, GetInt("table.width"))
	assert.Equal(t, "HotStreak_Comprehensive_Style_Guide.docx", GetString("output.path"))
	assert.False(t, GetBool("output.reproducible"))
}

func TestInitFromFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := writeConfig(t, `
output:
  path: out/guide.docx
page:
  margin: 720
style:
  colors:
    primary: "112233"
  sizes:
    headline: 20
    body: "10.5"
`)
	require.NoError(t, Init(path))
	assert.Equal(t, "out/guide.docx", GetString("output.path"))
	assert.Equal(t, 720, GetInt("page.margin"))
	assert.Equal(t, 15840, GetInt("page.height"))
	assert.Equal(t, map[string]string{"primary": "112233"}, GetStringMapString("style.colors"))

	sizes, err := GetFloat64Map("style.sizes")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"headline": 20, "body": 10.5}, sizes)
}

func TestGetFloat64MapRejectsText(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := writeConfig(t, `
style:
  spacing:
    space-sm: wide
`)
	require.NoError(t, Init(path))
	_, err := GetFloat64Map("style.spacing")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInitMissingExplicitFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	chdir(t, t.TempDir())
	t.Setenv("STYLEGUIDE_OUTPUT_PATH", "env.docx")

	require.NoError(t, Init())
	assert.Equal(t, "env.docx", GetString("output.path"))
}

func TestSetOverridesEnvironment(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	chdir(t, t.TempDir())
	t.Setenv("STYLEGUIDE_OUTPUT_PATH", "env.docx")

	require.NoError(t, Init())
	assert.Equal(t, "env.docx", GetString("output.path"))

	Set("output.path", "arg.docx")
	assert.Equal(t, "arg.docx", GetString("output.path"))
}

// chdir changes the working directory for the duration of the test
// and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
