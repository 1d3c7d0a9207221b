package checkpointer

import (
	"fmt"

	ts "github.com/OverKoder/Jormungandr/timestep"
)

// episodic implements checkpointing at the end of every n episodes
type episodic struct {
	interval int
	episodes int
	object   Serializable

	// filename returns the name of the file to save the next checkpoint
	// in. See Naming.Filenamer.
	filename func() string
}

// NewEpisodic returns a checkpointer that saves object every n finished
// episodes. Only the last TimeStep of an episode counts towards n.
func NewEpisodic(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n < 1 {
		return nil, fmt.Errorf("newEpisodic: interval must be positive, "+
			"got %d", n)
	}

	return &episodic{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint checkpoints the Checkpointer's tracked object by calling
// its Save() method
func (e *episodic) Checkpoint(t ts.TimeStep) error {
	if !t.Last() {
		return nil
	}

	e.episodes++
	if e.episodes%e.interval == 0 {
		if err := e.object.Save(e.filename()); err != nil {
			return fmt.Errorf("checkpoint: %v", err)
		}
	}
	return nil
}
