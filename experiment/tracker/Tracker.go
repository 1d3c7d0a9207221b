// Package tracker defines Trackers, which record per-episode data from
// the TimeSteps of a run and write it to disk when the run is over
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/OverKoder/Jormungandr/timestep"
)

// Tracker is sent every TimeStep of a run, starting with the first step
// of each episode. Save is called once, after the last episode.
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// LoadData reads back the gob-encoded []float64 written by the Save
// method of the Return and EpisodeLength trackers. Any failure is fatal.
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open %v: %v", filename, err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		log.Fatalf("could not decode %v: %v", filename, err)
	}
	return data
}
