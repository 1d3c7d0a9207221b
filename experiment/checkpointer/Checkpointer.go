// Package checkpointer implements Checkpointers, which periodically save
// serializable objects during an experiment
package checkpointer

import (
	"encoding/gob"

	ts "github.com/OverKoder/Jormungandr/timestep"
)

// Serializable is an object that can be saved/serialized
type Serializable interface {
	gob.GobEncoder
	gob.GobDecoder

	// Save writes the object to the named file
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on
// timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}
