package ecs

// UpdateFrame is passed to every system during one Scheduler tick.
type UpdateFrame struct {
	// DeltaTime is the duration of this frame in seconds.
	DeltaTime float64
	// Elapsed is the total simulated time in seconds, including this frame.
	Elapsed float64
	// Index counts frames from zero.
	Index    uint64
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(dt, elapsed float64, index uint64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Elapsed:   elapsed,
		Index:     index,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
