package planner

import (
	"fmt"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/timestep"
	"github.com/OverKoder/Jormungandr/utils/intutils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// DynaQ implements a Dyna-Q planner. Plan replays a uniformly sampled
// subset of the recorded transitions, each at most once.
type DynaQ struct {
	learner       agent.Learner
	algorithm     agent.Algorithm
	planningSteps int
	model         []timestep.Transition
	src           rand.Source
}

// NewDynaQ returns a new DynaQ planner replaying up to planningSteps
// transitions per call to Plan
func NewDynaQ(learner agent.Learner, alg agent.Algorithm,
	planningSteps int, seed uint64) *DynaQ {
	return &DynaQ{
		learner:       learner,
		algorithm:     alg,
		planningSteps: planningSteps,
		src:           rand.NewSource(seed),
	}
}

// AddStep records a transition
func (d *DynaQ) AddStep(t timestep.Transition) {
	d.model = append(d.model, t)
}

// Plan replays min(planningSteps, Len()) distinct transitions chosen
// uniformly at random. Replayed transitions are treated as
// non-terminal.
func (d *DynaQ) Plan() {
	k := intutils.Min(d.planningSteps, len(d.model))
	if k == 0 {
		return
	}

	indices := make([]int, k)
	sampleuv.WithoutReplacement(indices, len(d.model), d.src)

	for _, i := range indices {
		agent.Replay(d.learner, d.model[i], d.algorithm, false)
	}
}

// ResetModel forgets all recorded transitions
func (d *DynaQ) ResetModel() {
	d.model = d.model[:0]
}

// Len returns the number of recorded transitions
func (d *DynaQ) Len() int {
	return len(d.model)
}

func (d *DynaQ) String() string {
	return fmt.Sprintf("DynaQ | Algorithm: %v  |  Planning Steps: %d  |  "+
		"Model: %d", d.algorithm, d.planningSteps, len(d.model))
}
