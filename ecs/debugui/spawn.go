package debugui

import "github.com/plus3/scienteer/ecs"

// RegisterDebugUIComponents registers the components SpawnDebugUI uses.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}

// SpawnDebugUI adds the storage, scheduler and entity panels for target to
// the UI storage ui. scheduler may be nil.
func SpawnDebugUI(ui *ecs.Storage, target *ecs.Storage, scheduler *ecs.Scheduler) {
	ecs.NewSingleton(ui, ImguiInputState{})

	storagePanel := NewStoragePanel(target, 120)
	ui.Spawn(ImguiItem{Render: storagePanel.Render})

	if scheduler != nil {
		schedulerPanel := NewSchedulerPanel(scheduler)
		ui.Spawn(ImguiItem{Render: schedulerPanel.Render})
	}

	browser := NewEntityBrowser(target)
	ui.Spawn(ImguiItem{Render: browser.Render})
}
