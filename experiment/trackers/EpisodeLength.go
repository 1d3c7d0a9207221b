package trackers

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/OverKoder/Jormungandr/experiment/tracker"
	"github.com/OverKoder/Jormungandr/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment, along with the reason each episode ended.
// Note that an episode must finish for this Tracker to save its data.
type EpisodeLength struct {
	episodeLengths []float64
	endTypes       map[timestep.EndType]int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength saver which will save
// its data at the specified location filename. If filename is empty,
// Save is a no-op.
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{
		endTypes: make(map[timestep.EndType]int),
		filename: filename,
	}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode.
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
		e.endTypes[t.EndType()]++
	}
}

// Data returns the lengths of all finished episodes
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Ends returns the number of finished episodes that ended for reason end
func (e *EpisodeLength) Ends(end timestep.EndType) int {
	return e.endTypes[end]
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() {
	if e.filename == "" {
		return
	}

	file, err := os.Create(e.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(e.episodeLengths); err != nil {
		log.Fatalf("could not encode episode length data: %v", err)
	}
}

var _ tracker.Tracker = &EpisodeLength{}
