package game_test

import (
	"testing"

	"github.com/plus3/scienteer/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script, err := game.ParseScript("0-2:right,fire; 1:jump ;")
	require.NoError(t, err)
	assert.Equal(t, 2, script.Len())
	assert.Equal(t, 2.0, script.End())

	input := game.NewInputState()

	script.Apply(input, 0, 0.125)
	assert.True(t, input.Pressed(game.MoveRight))
	assert.True(t, input.Pressed(game.Fire))
	assert.False(t, input.Pressed(game.Jump))

	script.Apply(input, 1, 0.125)
	assert.True(t, input.Pressed(game.Jump))

	script.Apply(input, 1.125, 0.125)
	assert.False(t, input.Pressed(game.Jump))
	assert.True(t, input.Pressed(game.MoveRight))

	script.Apply(input, 2, 0.125)
	assert.False(t, input.Pressed(game.MoveRight))
	assert.False(t, input.Pressed(game.Fire))
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := game.ParseScript("")
	require.NoError(t, err)
	assert.Equal(t, 0, script.Len())
	assert.Equal(t, 0.0, script.End())
}

func TestParseScriptErrors(t *testing.T) {
	for _, text := range []string{
		"right",
		"0-1",
		"0-1:",
		"2-1:left",
		"0-1:fly",
		"x-1:left",
		"-1:left",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := game.ParseScript(text)
			assert.Error(t, err)
		})
	}
}

func TestScriptDrivesWorld(t *testing.T) {
	script, err := game.ParseScript("0-1:right;0.5:jump")
	require.NoError(t, err)

	input := game.NewInputState()
	w := mustWorld(t, input)

	const dt = 0.125
	for i := range 16 {
		script.Apply(input, float64(i)*dt, dt)
		w.Advance(dt)
	}

	stats := w.Stats()
	assert.Equal(t, 1, stats.Jumps)
	assert.Equal(t, 100.0, w.Player().Transform.Position.X)
}

func TestInputStateEdges(t *testing.T) {
	input := game.NewInputState()
	input.Press(game.Jump)
	assert.True(t, input.JustPressed(game.Jump))

	input.EndFrame()
	assert.True(t, input.Pressed(game.Jump))
	assert.False(t, input.JustPressed(game.Jump))

	input.Release(game.Jump)
	input.EndFrame()
	input.Press(game.Jump)
	assert.True(t, input.JustPressed(game.Jump))

	assert.False(t, input.Pressed(game.Action(200)))
}

func TestParseAction(t *testing.T) {
	for _, a := range []game.Action{game.MoveLeft, game.MoveRight, game.Jump, game.Fire} {
		got, err := game.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := game.ParseAction("crouch")
	assert.Error(t, err)
}
