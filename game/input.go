package game

import "fmt"

// Action is a logical control, independent of the physical key bound to it.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Jump
	Fire

	actionCount
)

var actionNames = [actionCount]string{
	MoveLeft:  "left",
	MoveRight: "right",
	Jump:      "jump",
	Fire:      "fire",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction maps a name produced by Action.String back to the Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Input is the per-frame control state the systems read.
type Input interface {
	// Pressed reports whether the action is held this frame.
	Pressed(Action) bool
	// JustPressed reports whether the action went down this frame.
	JustPressed(Action) bool
}

// FrameEnder is implemented by inputs that derive edges themselves.
// World.Advance calls EndFrame after every frame.
type FrameEnder interface {
	EndFrame()
}

// InputState is a programmable Input. Edges are computed against the state
// at the previous EndFrame.
type InputState struct {
	held [actionCount]bool
	prev [actionCount]bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Set holds or releases the action.
func (s *InputState) Set(a Action, down bool) {
	if a < actionCount {
		s.held[a] = down
	}
}

func (s *InputState) Press(actions ...Action) {
	for _, a := range actions {
		s.Set(a, true)
	}
}

func (s *InputState) Release(actions ...Action) {
	for _, a := range actions {
		s.Set(a, false)
	}
}

// ReleaseAll lets go of every action.
func (s *InputState) ReleaseAll() {
	s.held = [actionCount]bool{}
}

func (s *InputState) Pressed(a Action) bool {
	return a < actionCount && s.held[a]
}

func (s *InputState) JustPressed(a Action) bool {
	return a < actionCount && s.held[a] && !s.prev[a]
}

func (s *InputState) EndFrame() {
	s.prev = s.held
}
