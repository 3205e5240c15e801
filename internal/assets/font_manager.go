package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Built-in font names. A file assets/fonts/<name>.ttf overrides the embedded
// Go font of the same name.
const (
	FontRegular = "regular"
	FontBold    = "bold"
	FontMono    = "mono"
)

var embedded = map[string][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
	FontMono:    gomono.TTF,
}

type faceKey struct {
	name string
	size float64
}

// FontManager parses fonts once and caches faces per size.
type FontManager struct {
	dir   string
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFontManager looks for override files in dir; an empty dir disables them.
func NewFontManager(dir string) *FontManager {
	return &FontManager{
		dir:   dir,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

func (m *FontManager) loadFont(name string) (*opentype.Font, error) {
	if f, ok := m.fonts[name]; ok {
		return f, nil
	}

	data, ok := embedded[name]
	if m.dir != "" {
		path := filepath.Join(m.dir, name+".ttf")
		if fileData, err := os.ReadFile(path); err == nil {
			data, ok = fileData, true
			slog.Info("font override loaded", "font", name, "path", path)
		} else if !os.IsNotExist(err) {
			slog.Warn("failed to read font override", "path", path, "error", err)
		}
	}
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	m.fonts[name] = f
	return f, nil
}

// Face returns a cached face of the named font at size points.
func (m *FontManager) Face(name string, size float64) (font.Face, error) {
	key := faceKey{name, size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	f, err := m.loadFont(name)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face %q at %.0fpt: %w", name, size, err)
	}
	m.faces[key] = face
	return face, nil
}

// MustFace is Face for startup code: a broken override falls back to the
// embedded font rather than failing.
func (m *FontManager) MustFace(name string, size float64) font.Face {
	face, err := m.Face(name, size)
	if err == nil {
		return face
	}
	slog.Warn("falling back to embedded font", "font", name, "error", err)
	f, perr := opentype.Parse(goregular.TTF)
	if perr != nil {
		panic(perr)
	}
	face, err = opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		panic(err)
	}
	return face
}

// Cleanup closes every cached face.
func (m *FontManager) Cleanup() {
	for key, face := range m.faces {
		face.Close()
		delete(m.faces, key)
	}
	m.fonts = make(map[string]*opentype.Font)
}
