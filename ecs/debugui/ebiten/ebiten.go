// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scienteer/ecs"
	"github.com/plus3/scienteer/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay is a self-contained debug UI: its own storage holding the panel
// items and the backend singleton, and a scheduler running ImguiSystem.
type Overlay struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]
}

// NewOverlay creates the ImGui context and the window-bound backend.
// It must be called before ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[ImguiBackend](registry)
	debugui.RegisterDebugUIComponents(registry)
	storage := ecs.NewStorage(registry)

	o := &Overlay{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		backend:   ecs.NewSingleton(storage, ImguiBackend{EbitenBackend: backend}),
		input:     ecs.NewSingleton(storage, debugui.ImguiInputState{}),
	}
	o.scheduler.Register(&debugui.ImguiSystem{})
	return o
}

// Storage is the UI storage panels are spawned into.
func (o *Overlay) Storage() *ecs.Storage {
	return o.storage
}

// Inspect adds the standard storage, scheduler and entity panels for target.
func (o *Overlay) Inspect(target *ecs.Storage, scheduler *ecs.Scheduler) {
	debugui.SpawnDebugUI(o.storage, target, scheduler)
}

// Add spawns a custom panel.
func (o *Overlay) Add(render func()) {
	o.storage.Spawn(debugui.ImguiItem{Render: render})
}

// Update builds this frame's ImGui draw lists.
func (o *Overlay) Update(dt float64) {
	backend := o.backend.Get()
	backend.BeginFrame()
	o.scheduler.Once(dt)
	backend.EndFrame()
}

// WantsKeyboard reports whether a panel had keyboard focus last frame.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Get().Layout(outsideWidth, outsideHeight)
}
