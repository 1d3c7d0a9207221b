package planner

import (
	"fmt"
	"math"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/state"
	"github.com/OverKoder/Jormungandr/timestep"
)

// Prioritized implements a Dyna-Q planner with prioritized sweeping.
//
// A transition is queued when it is recorded if the magnitude of its TD
// error exceeds the threshold. Plan pops the transition with the
// largest error, replays it, and then queues every recorded transition
// that leads into the popped transition's state whose error now exceeds
// the threshold. The priority of a popped transition is the one it was
// queued with and is not recomputed.
type Prioritized struct {
	learner       agent.TdErrorer
	algorithm     agent.Algorithm
	planningSteps int
	threshold     float64

	model []timestep.Transition

	// predecessors maps a state to the transitions recorded as leading
	// into it
	predecessors map[state.State][]timestep.Transition
	queue        *priorityQueue
}

// NewPrioritized returns a new Prioritized planner. Only one-step
// algorithms are supported, NewPrioritized panics otherwise; use New to
// receive an error instead.
func NewPrioritized(learner agent.TdErrorer, alg agent.Algorithm,
	planningSteps int, threshold float64) *Prioritized {
	if alg.NStep() {
		panic(fmt.Sprintf("newPrioritized: %v", errUnsupportedAlgorithm))
	}

	return &Prioritized{
		learner:       learner,
		algorithm:     alg,
		planningSteps: planningSteps,
		threshold:     threshold,
		predecessors:  make(map[state.State][]timestep.Transition),
		queue:         &priorityQueue{},
	}
}

// AddStep records a transition, queueing it if its TD error under the
// current action values exceeds the threshold
func (p *Prioritized) AddStep(t timestep.Transition) {
	p.model = append(p.model, t)
	p.predecessors[t.NextState] = append(p.predecessors[t.NextState], t)

	if priority := p.priority(t); priority > p.threshold {
		p.queue.push(t, priority)
	}
}

// priority returns the magnitude of the TD error of t
func (p *Prioritized) priority(t timestep.Transition) float64 {
	return math.Abs(p.learner.TdError(t, p.algorithm))
}

// Plan replays queued transitions until either the queue is empty or
// planningSteps transitions have been replayed
func (p *Prioritized) Plan() {
	for steps := 0; p.queue.Len() > 0 && steps != p.planningSteps; steps++ {
		t, _ := p.queue.pop()
		agent.Replay(p.learner, t, p.algorithm, false)

		for _, prev := range p.predecessors[t.State] {
			if priority := p.priority(prev); priority > p.threshold {
				p.queue.push(prev, priority)
			}
		}
	}
}

// ResetModel forgets all recorded and queued transitions
func (p *Prioritized) ResetModel() {
	p.model = p.model[:0]
	p.predecessors = make(map[state.State][]timestep.Transition)
	p.queue.reset()
}

// Len returns the number of recorded transitions
func (p *Prioritized) Len() int {
	return len(p.model)
}

// Queued returns the number of transitions waiting to be replayed
func (p *Prioritized) Queued() int {
	return p.queue.Len()
}

func (p *Prioritized) String() string {
	return fmt.Sprintf("Prioritized | Algorithm: %v  |  Planning Steps: %d  "+
		"|  Threshold: %v  |  Model: %d  |  Queued: %d", p.algorithm,
		p.planningSteps, p.threshold, len(p.model), p.queue.Len())
}
