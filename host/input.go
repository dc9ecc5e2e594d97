package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/scienteer/game"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[game.Action][]ebiten.Key{
	game.MoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	game.MoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	game.Jump:      {ebiten.KeySpace, ebiten.KeyArrowUp},
	game.Fire:      {ebiten.KeyControlLeft, ebiten.KeyControlRight},
}

// KeyboardInput reads the Ebiten keyboard state. Ebiten tracks edges itself,
// so it does not implement game.FrameEnder.
type KeyboardInput struct {
	// Suppressed, when set and returning true, hides every key from the
	// game; the debug overlay uses it while a panel has focus.
	Suppressed func() bool
}

func (k *KeyboardInput) muted() bool {
	return k.Suppressed != nil && k.Suppressed()
}

func (k *KeyboardInput) Pressed(a game.Action) bool {
	if k.muted() {
		return false
	}
	for _, key := range Bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *KeyboardInput) JustPressed(a game.Action) bool {
	if k.muted() {
		return false
	}
	for _, key := range Bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
