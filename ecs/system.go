package ecs

// System is one step of a frame. Systems are structs whose Query, View and
// Singleton fields are bound by Scheduler.Register; any other fields persist
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
