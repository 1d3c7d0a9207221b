// Package experiment implements the solvers that train an agent on the
// snake environment, one episode at a time
package experiment

import (
	"fmt"
	"os"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/experiment/checkpointer"
	"github.com/OverKoder/Jormungandr/experiment/tracker"
	"github.com/OverKoder/Jormungandr/planner"
	ts "github.com/OverKoder/Jormungandr/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send every environment TimeStep to their Trackers, which
// cache the data they need to be later saved to disk by Save(). The
// Run() method runs all episodes of the experiment while RunEpisode()
// runs a single episode and returns its return.
//
// When training, the action values are checkpointed at the end of every
// episode and, if a planner is configured, the episode's transitions
// are replayed after the episode ends. In test mode the action values
// are never changed: updates, planning, and checkpointing are skipped.
type Experiment interface {
	Run()
	RunEpisode() float64

	// Save all tracked data to disk
	Save()

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment
	Register(t tracker.Tracker)
}

// solver implements the functionality shared by all experiments
type solver struct {
	env     environment.Environment
	agent   agent.Agent
	planner planner.Planner

	episodes      int
	test          bool
	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer
}

func newSolver(env environment.Environment, a agent.Agent,
	p planner.Planner, episodes int, test bool,
	c []checkpointer.Checkpointer) solver {
	return solver{
		env:           env,
		agent:         a,
		planner:       p,
		episodes:      episodes,
		test:          test,
		checkpointers: c,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (s *solver) Register(t tracker.Tracker) {
	s.trackers = append(s.trackers, t)
}

// Save saves all the data cached by the Trackers to disk
func (s *solver) Save() {
	for _, t := range s.trackers {
		t.Save()
	}
}

// run runs all episodes of the experiment
func (s *solver) run(runEpisode func() float64) {
	for i := 0; i < s.episodes; i++ {
		runEpisode()
	}
}

// learning returns whether the action values should be changed
func (s *solver) learning() bool {
	return !s.test
}

// reset starts a new episode, forgetting the planner's model
func (s *solver) reset() ts.TimeStep {
	step := s.env.Reset()
	if s.planner != nil {
		s.planner.ResetModel()
	}
	s.track(step)
	return step
}

// track tracks the current timestep by caching its data in each Tracker
func (s *solver) track(t ts.TimeStep) {
	for _, tracker := range s.trackers {
		tracker.Track(t)
	}
}

// addStep records a transition with the planner
func (s *solver) addStep(t ts.Transition) {
	if s.planner != nil && s.learning() {
		s.planner.AddStep(t)
	}
}

// endEpisode plans and checkpoints after the last step of an episode
func (s *solver) endEpisode(last ts.TimeStep) {
	if !s.learning() {
		return
	}

	if s.planner != nil {
		s.planner.Plan()
	}

	for _, c := range s.checkpointers {
		if err := c.Checkpoint(last); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not checkpoint: %v\n", err)
		}
	}
}
