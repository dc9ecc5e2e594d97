package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scienteer/game"
)

// placement is where and how a sprite lands on the virtual screen.
type placement struct {
	// X, Y is the sprite centre in screen pixels, +Y down.
	X, Y float64

	// ScaleX, ScaleY stretch the source image to the sprite size. A negative
	// ScaleX mirrors it.
	ScaleX, ScaleY float64

	// Rotation is clockwise on screen, in radians.
	Rotation float64
}

// place maps a drawable in world space onto a camera-centred virtual screen
// for a source image of imgW x imgH pixels.
func place(d game.Drawable, camera game.Vec2, cam game.Camera, imgW, imgH int) placement {
	t, s := d.Transform, d.Sprite

	sx := s.Size.X / float64(imgW) * t.Scale.X
	sy := s.Size.Y / float64(imgH) * t.Scale.Y
	if s.FlipX {
		sx = -sx
	}

	return placement{
		X:        t.Position.X - camera.X + float64(cam.VirtualWidth)/2,
		Y:        float64(cam.VirtualHeight)/2 - (t.Position.Y - camera.Y),
		ScaleX:   sx,
		ScaleY:   sy,
		Rotation: -t.Rotation,
	}
}

func (p placement) geoM(imgW, imgH int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(imgW)/2, -float64(imgH)/2)
	m.Scale(p.ScaleX, p.ScaleY)
	m.Rotate(p.Rotation)
	m.Translate(p.X, p.Y)
	return m
}

// Renderer draws a World's sprites back to front.
type Renderer struct {
	assets *Assets
}

func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{assets: assets}
}

// Draw renders every drawable onto target, which must be the camera's
// virtual resolution.
func (r *Renderer) Draw(target *ebiten.Image, world *game.World) {
	cam, origin := world.Camera(), world.CameraPosition()
	for _, d := range world.Drawables() {
		img := r.assets.Image(d.Sprite.Asset)
		if img == nil {
			continue
		}
		size := img.Bounds().Size()
		p := place(d, origin, cam, size.X, size.Y)

		op := &ebiten.DrawImageOptions{}
		op.GeoM = p.geoM(size.X, size.Y)
		op.Filter = ebiten.FilterNearest
		target.DrawImage(img, op)
	}
}

// fit returns the scale and offset that letterbox a
// virtual-resolution canvas inside a screen.
func fit(virtualW, virtualH, screenW, screenH int) (scale, offsetX, offsetY float64) {
	scale = min(float64(screenW)/float64(virtualW), float64(screenH)/float64(virtualH))
	offsetX = (float64(screenW) - float64(virtualW)*scale) / 2
	offsetY = (float64(screenH) - float64(virtualH)*scale) / 2
	return scale, offsetX, offsetY
}
