package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archdraw/diagram"
)

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	theme, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeTheme(t, `
padding = 30

[element]
stroke = "#333333"
`)
	theme, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, theme.Padding)
	assert.Equal(t, "#333333", theme.Element.Stroke)
	// Unset fields keep their defaults.
	assert.Equal(t, "#ffffff", theme.Element.Fill)
	assert.Equal(t, diagram.ShapeBox, theme.Element.Shape)
}

func TestLoadTagStyles(t *testing.T) {
	path := writeTheme(t, `
[tags.database]
shape = "cylinder"

[tags.external]
border = "dashed"
fill = "#eeeeee"
`)
	theme, err := Load(path)
	require.NoError(t, err)

	el := diagram.Element{ID: "db", Tags: []string{"database", "external"}}
	style := theme.Resolve(el)
	assert.Equal(t, diagram.ShapeCylinder, style.Shape)
	assert.Equal(t, diagram.BorderDashed, style.Border)
	assert.Equal(t, "#eeeeee", style.Fill)
	// Untagged elements keep the base style.
	assert.Equal(t, diagram.ShapeBox, theme.Resolve(diagram.Element{ID: "x"}).Shape)
}

func TestLoadRejectsUnknownShape(t *testing.T) {
	path := writeTheme(t, `
[element]
shape = "dodecahedron"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dodecahedron")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
