package host

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scienteer/game"
)

// statusLines is the gameplay panel's content.
func statusLines(w *game.World) []string {
	p := w.Player()
	stats := w.Stats()

	facing := "right"
	if !p.Player.FacingRight {
		facing = "left"
	}

	lines := []string{
		fmt.Sprintf("Elapsed: %.2fs  Frames: %d", w.Elapsed(), stats.Frames),
		fmt.Sprintf("Player: (%.1f, %.1f)  v=(%.1f, %.1f)",
			p.Transform.Position.X, p.Transform.Position.Y,
			p.Velocity.Speed.X, p.Velocity.Speed.Y),
		fmt.Sprintf("Jumping: %t  Facing: %s  Last shot: %.2fs", p.Player.IsJumping, facing, p.Player.LastShotTime),
		fmt.Sprintf("Projectiles: %d", len(w.Projectiles())),
	}
	for i, e := range w.Enemies() {
		dir := "right"
		if !e.Enemy.MovingRight {
			dir = "left"
		}
		lines = append(lines, fmt.Sprintf("Enemy %d: (%.1f, %.1f) moving %s", i, e.Transform.Position.X, e.Transform.Position.Y, dir))
	}
	lines = append(lines,
		fmt.Sprintf("Shots: %d  Despawned: %d", stats.ShotsFired, stats.ProjectilesDespawned),
		fmt.Sprintf("Jumps: %d  Landings: %d  Enemy turns: %d", stats.Jumps, stats.Landings, stats.EnemyTurns),
	)
	return lines
}

// gameplayPanel returns an ImGui render function showing the world state.
func gameplayPanel(w *game.World) func() {
	return func() {
		if !imgui.BeginV("Scienteer", nil, imgui.WindowFlagsAlwaysAutoResize) {
			imgui.End()
			return
		}
		for _, line := range statusLines(w) {
			imgui.Text(line)
		}
		imgui.End()
	}
}
