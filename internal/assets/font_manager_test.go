package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceIsCached(t *testing.T) {
	m := NewFontManager("")
	a, err := m.Face(FontRegular, 16)
	require.NoError(t, err)
	b, err := m.Face(FontRegular, 16)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := m.Face(FontRegular, 24)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Greater(t, int(c.Metrics().Height), int(a.Metrics().Height))
}

func TestUnknownFont(t *testing.T) {
	m := NewFontManager("")
	_, err := m.Face("comic", 12)
	assert.Error(t, err)
	assert.NotNil(t, m.MustFace("comic", 12))
}

func TestBrokenOverrideFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FontMono+".ttf"), []byte("not a font"), 0o644))

	m := NewFontManager(dir)
	_, err := m.Face(FontMono, 12)
	assert.Error(t, err)
	assert.NotNil(t, m.MustFace(FontMono, 12))

	_, err = m.Face(FontBold, 12)
	assert.NoError(t, err, "fonts without an override use the embedded data")
}

func TestCleanup(t *testing.T) {
	m := NewFontManager("")
	_, err := m.Face(FontBold, 10)
	require.NoError(t, err)
	m.Cleanup()
	assert.Empty(t, m.faces)
	assert.Empty(t, m.fonts)
}
