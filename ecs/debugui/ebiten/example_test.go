package ebiten_test

import (
	"strconv"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scienteer/ecs"
	debugui_ebiten "github.com/plus3/scienteer/ecs/debugui/ebiten"
)

type Counter struct {
	N int
}

type CountSystem struct {
	Counters ecs.Query[struct{ *Counter }]
}

func (s *CountSystem) Execute(frame *ecs.UpdateFrame) {
	for c := range s.Counters.Values() {
		c.N++
	}
}

// Game runs a world scheduler and draws the overlay on top of it.
type Game struct {
	scheduler *ecs.Scheduler
	overlay   *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	g.scheduler.Once(1.0 / 60.0)
	g.overlay.Update(1.0 / 60.0)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content first, then the overlay.
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	overlay := debugui_ebiten.NewOverlay("ECS ImGui Example", 1280, 720)

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Counter](registry)
	storage := ecs.NewStorage(registry)
	counter := storage.Spawn(Counter{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&CountSystem{})

	overlay.Inspect(storage, scheduler)
	overlay.Add(func() {
		imgui.Begin("Counter")
		if c := ecs.ReadComponent[Counter](storage, counter); c != nil {
			imgui.Text("ticks: " + strconv.Itoa(c.N))
		}
		imgui.End()
	})

	if err := ebiten.RunGame(&Game{scheduler: scheduler, overlay: overlay}); err != nil {
		panic(err)
	}
}
