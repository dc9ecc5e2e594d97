package host

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/plus3/scienteer/game"
)

var placeholderColors = map[game.AssetID]color.RGBA{
	game.AssetBackground: {R: 0x2b, G: 0x2d, B: 0x42, A: 0xff},
	game.AssetPlayer:     {R: 0xed, G: 0xf2, B: 0xf4, A: 0xff},
	game.AssetEnemy:      {R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	game.AssetProjectile: {R: 0x00, G: 0xb4, B: 0xd8, A: 0xff},
}

// Assets holds one decoded image per sprite asset.
type Assets struct {
	images map[game.AssetID]*ebiten.Image
}

// LoadAssets decodes every known asset under dir. A missing file is replaced
// by a solid-colour placeholder and logged; any other failure is returned.
func LoadAssets(dir string, logger *log.Logger) (*Assets, error) {
	a := &Assets{images: make(map[game.AssetID]*ebiten.Image, len(placeholderColors))}

	for id, fill := range placeholderColors {
		path := filepath.Join(dir, filepath.FromSlash(string(id)))

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Warn("asset missing, using placeholder", "asset", id, "path", path)
			a.images[id] = placeholder(fill)
			continue
		}

		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load asset %s: %w", id, err)
		}
		logger.Debug("asset loaded", "asset", id, "size", img.Bounds().Size())
		a.images[id] = img
	}

	return a, nil
}

// Image returns the image for id, or nil for an unknown asset.
func (a *Assets) Image(id game.AssetID) *ebiten.Image {
	return a.images[id]
}

func placeholder(fill color.Color) *ebiten.Image {
	img := ebiten.NewImage(8, 8)
	img.Fill(fill)
	return img
}
