package ecs

import "time"

// UpdateFrame is handed to every system for one scheduler pass.
type UpdateFrame struct {
	Elapsed  time.Duration
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(elapsed time.Duration, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Elapsed:  elapsed,
		Commands: newCommands(),
		Storage:  storage,
	}
}
