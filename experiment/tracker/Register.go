package tracker

import (
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/timestep"
)

// registeredTracker registers an Environment with some Tracker so
// that the Tracker tracks data from the registered Environment only.
// registeredTracker itself is a Tracker.
//
// Track ignores its argument and forwards the most recent TimeStep of
// the registered Environment to the embedded Tracker instead. This is
// useful when an experiment drives a wrapper around the Environment
// whose data should not be tracked.
type registeredTracker struct {
	Tracker
	env environment.Environment
}

// Register registers a new Tracker with an Environment, to track data
// from the registered Environment only.
//
// Note: the underlying concrete type of the registered Tracker is
// lost when registering an Environment with a Tracker.
func Register(t Tracker, env environment.Environment) Tracker {
	return &registeredTracker{t, env}
}

// Track calls Track() on the embedded Tracker using the current
// TimeStep from the registered Environment.
func (r *registeredTracker) Track(timestep.TimeStep) {
	r.Tracker.Track(r.env.CurrentTimeStep())
}
