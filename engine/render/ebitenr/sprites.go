package ebitenr

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Sheets holds the loaded sprite sheets by name.
type Sheets struct {
	images map[string]*ebiten.Image
}

// LoadSheets loads <dir>/sprites/<name>.png for each name. A missing or
// broken sheet is logged and skipped; planes then draw their fallback shape.
func LoadSheets(dir string, names []string, log zerolog.Logger) *Sheets {
	if dir == "" {
		dir = getAssetsDir()
	}
	s := &Sheets{images: make(map[string]*ebiten.Image)}
	for _, name := range names {
		path := filepath.Join(dir, "sprites", name+".png")
		img, err := loadFromFile(path)
		if err != nil {
			log.Warn().Err(err).Str("sheet", name).Msg("sprite sheet unavailable, using shapes")
			continue
		}
		s.images[name] = img
	}
	log.Info().Int("loaded", len(s.images)).Int("wanted", len(names)).Str("dir", dir).Msg("sprite sheets")
	return s
}

// Get returns nil for sheets that failed to load.
func (s *Sheets) Get(name string) *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.images[name]
}

func getAssetsDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "..", "assets")
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	return "assets"
}

func loadFromFile(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
