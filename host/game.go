// Package host runs a game.World inside an Ebiten window: keyboard input,
// sprite rendering, asset loading and the optional ImGui overlay.
package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	debugui_ebiten "github.com/plus3/scienteer/ecs/debugui/ebiten"
	"github.com/plus3/scienteer/game"
)

var clearColor = color.RGBA{A: 0xff}

// Game implements ebiten.Game around a World.
//
// The world is drawn onto a canvas at the camera's virtual resolution and
// then scaled onto the screen. Without the overlay, Layout returns the
// virtual resolution and Ebiten does the scaling; with it, Layout returns the
// window size so the panels render at native resolution.
type Game struct {
	world    *game.World
	renderer *Renderer
	overlay  *debugui_ebiten.Overlay
	canvas   *ebiten.Image
}

func NewGame(world *game.World, assets *Assets, overlay *debugui_ebiten.Overlay) *Game {
	cam := world.Camera()
	return &Game{
		world:    world,
		renderer: NewRenderer(assets),
		overlay:  overlay,
		canvas:   ebiten.NewImage(cam.VirtualWidth, cam.VirtualHeight),
	}
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.world.Advance(dt)
	if g.overlay != nil {
		g.overlay.Update(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Fill(clearColor)
	g.renderer.Draw(g.canvas, g.world)

	cam := g.world.Camera()
	size := screen.Bounds().Size()
	scale, ox, oy := fit(cam.VirtualWidth, cam.VirtualHeight, size.X, size.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.canvas, op)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	cam := g.world.Camera()
	return cam.VirtualWidth, cam.VirtualHeight
}
