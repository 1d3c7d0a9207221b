package planner

import (
	"testing"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/agent/policy"
	"github.com/OverKoder/Jormungandr/agent/tabular"
	"github.com/OverKoder/Jormungandr/state"
	"github.com/OverKoder/Jormungandr/timestep"
)

func newLearner(t *testing.T, learningRate float64) *tabular.Agent {
	a, err := tabular.New(tabular.Config{LearningRate: learningRate},
		policy.NewGreedy(1))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// states returns n distinct valid states
func states(n int) []state.State {
	out := make([]state.State, 0, n)
	for i := 0; len(out) < n; i++ {
		s := state.FromIndex(i)
		if s.Validate() == nil {
			out = append(out, s)
		}
	}
	return out
}

func TestNewDisabled(t *testing.T) {
	learner := newLearner(t, 0.1)

	p, err := New(Config{Type: DynaQType, Algorithm: agent.Sarsa}, learner, 1)
	if err != nil || p != nil {
		t.Errorf("zero planning steps should disable planning, got %v, %v",
			p, err)
	}

	p, err = New(Config{Type: None, PlanningSteps: 5}, learner, 1)
	if err != nil || p != nil {
		t.Errorf("none type should disable planning, got %v, %v", p, err)
	}
}

func TestNewErrors(t *testing.T) {
	learner := newLearner(t, 0.1)

	_, err := New(Config{Type: "astar", PlanningSteps: 5,
		Algorithm: agent.Sarsa}, learner, 1)
	if !IsUnknownType(err) {
		t.Errorf("expected unknown type error, got %v", err)
	}

	for _, alg := range []agent.Algorithm{agent.NStepSarsa,
		agent.NStepOffPolicy} {
		_, err = New(Config{Type: PrioritizedType, PlanningSteps: 5,
			Algorithm: alg}, learner, 1)
		if !IsUnsupportedAlgorithm(err) {
			t.Errorf("prioritized %v: expected unsupported algorithm "+
				"error, got %v", alg, err)
		}
	}

	if _, err = New(Config{Type: DynaQType, PlanningSteps: -1,
		Algorithm: agent.Sarsa}, learner, 1); err == nil {
		t.Error("negative planning steps should be rejected")
	}

	if _, err = New(Config{Type: DynaQType, PlanningSteps: 1,
		Algorithm: "tdLambda"}, learner, 1); err == nil {
		t.Error("unknown algorithm should be rejected")
	}
}

func TestNewTypes(t *testing.T) {
	learner := newLearner(t, 0.1)

	p, err := New(Config{Type: "DynaQ", PlanningSteps: 3,
		Algorithm: agent.NStepSarsa}, learner, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*DynaQ); !ok {
		t.Errorf("expected *DynaQ, got %T", p)
	}

	p, err = New(Config{Type: PrioritizedType, PlanningSteps: 3,
		Algorithm: agent.QLearning}, learner, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*Prioritized); !ok {
		t.Errorf("expected *Prioritized, got %T", p)
	}
}

func TestDynaQCapsAtModelSize(t *testing.T) {
	learner := newLearner(t, 1)
	s := states(4)
	p := NewDynaQ(learner, agent.NStepSarsa, 100, 1)

	// Each transition sets its own (state, action) value to its gain
	// when replayed with a unit learning rate
	for i := 0; i < 3; i++ {
		p.AddStep(timestep.NewNStepTransition(s[i], state.Left,
			float64(i+1), 1))
	}
	p.Plan()

	for i := 0; i < 3; i++ {
		if got := learner.Value(s[i], state.Left); got != float64(i+1) {
			t.Errorf("Q(s%d) = %v, want %v", i, got, i+1)
		}
	}
	if got := learner.Value(s[3], state.Left); got != 0 {
		t.Errorf("unrecorded state updated to %v", got)
	}
}

func TestDynaQSamplesWithoutReplacement(t *testing.T) {
	learner := newLearner(t, 0.5)
	s := states(2)
	p := NewDynaQ(learner, agent.Sarsa, 1, 7)

	// Identical transitions so that any replay is distinguishable only
	// by its count
	for i := 0; i < 10; i++ {
		p.AddStep(timestep.NewTransition(s[0], state.Straight, 1, s[1],
			state.Straight))
	}
	p.Plan()

	if got := learner.Value(s[0], state.Straight); got != 0.5 {
		t.Errorf("one planning step replayed %v worth of updates", got)
	}
}

func TestDynaQReset(t *testing.T) {
	learner := newLearner(t, 0.5)
	s := states(2)
	p := NewDynaQ(learner, agent.QLearning, 5, 1)
	p.AddStep(timestep.NewTransition(s[0], state.Right, 1, s[1], 0))
	p.ResetModel()
	if p.Len() != 0 {
		t.Fatalf("model has %d transitions after reset", p.Len())
	}

	p.Plan()
	if got := learner.Value(s[0], state.Right); got != 0 {
		t.Errorf("planning on an empty model changed Q to %v", got)
	}
}

// A single high-error transition is replayed exactly once even when more
// planning steps are allowed, and an empty predecessor index is not an
// error
func TestPrioritizedSinglePop(t *testing.T) {
	learner := newLearner(t, 0.5)
	s := states(2)
	p := NewPrioritized(learner, agent.Sarsa, 10, 0.05)

	p.AddStep(timestep.NewTransition(s[0], state.Left, 1, s[1],
		state.Straight))
	if p.Queued() != 1 {
		t.Fatalf("queued = %d, want 1", p.Queued())
	}

	p.Plan()
	if got := learner.Value(s[0], state.Left); got != 0.5 {
		t.Errorf("Q = %v, want a single update to 0.5", got)
	}
	if p.Queued() != 0 {
		t.Errorf("queued = %d after planning, want 0", p.Queued())
	}
}

func TestPrioritizedThreshold(t *testing.T) {
	learner := newLearner(t, 0.5)
	s := states(2)
	p := NewPrioritized(learner, agent.QLearning, 10, 1)

	// |TD error| = 1 is not strictly above the threshold
	p.AddStep(timestep.NewTransition(s[0], state.Left, 1, s[1], 0))
	if p.Queued() != 0 {
		t.Errorf("queued = %d, want 0", p.Queued())
	}
	if p.Len() != 1 {
		t.Errorf("model length = %d, want 1", p.Len())
	}
}

func TestPrioritizedSweepsPredecessors(t *testing.T) {
	learner := newLearner(t, 1)
	s := states(3)
	p := NewPrioritized(learner, agent.QLearning, 10, 0.05)

	// s0 -> s1 with no reward, s1 -> s2 with a large reward. Only the
	// second transition has an error when recorded.
	first := timestep.NewTransition(s[0], state.Right, 0, s[1], 0)
	second := timestep.NewTransition(s[1], state.Straight, 5, s[2], 0)
	p.AddStep(first)
	p.AddStep(second)
	if p.Queued() != 1 {
		t.Fatalf("queued = %d, want 1", p.Queued())
	}

	// Replaying the second transition raises Q(s1), which gives its
	// predecessor an error above the threshold
	p.Plan()
	if got := learner.Value(s[1], state.Straight); got != 5 {
		t.Errorf("Q(s1) = %v, want 5", got)
	}
	if got := learner.Value(s[0], state.Right); got != 5 {
		t.Errorf("Q(s0) = %v, want 5 after sweeping", got)
	}
}

func TestPrioritizedOrder(t *testing.T) {
	learner := newLearner(t, 1)
	s := states(4)
	p := NewPrioritized(learner, agent.Sarsa, 1, 0)

	p.AddStep(timestep.NewTransition(s[0], state.Left, 1, s[3], 0))
	p.AddStep(timestep.NewTransition(s[1], state.Left, 3, s[3], 0))
	p.AddStep(timestep.NewTransition(s[2], state.Left, 2, s[3], 0))

	// One planning step pops the largest error only
	p.Plan()
	if got := learner.Value(s[1], state.Left); got != 3 {
		t.Errorf("Q(s1) = %v, want 3", got)
	}
	if learner.Value(s[0], state.Left) != 0 ||
		learner.Value(s[2], state.Left) != 0 {
		t.Error("only the largest error should be replayed")
	}
	if p.Queued() != 2 {
		t.Errorf("queued = %d, want 2", p.Queued())
	}

	p.ResetModel()
	if p.Queued() != 0 || p.Len() != 0 {
		t.Errorf("reset left %d queued, %d recorded", p.Queued(), p.Len())
	}
}

func TestPriorityQueueTieBreak(t *testing.T) {
	s := states(3)
	q := &priorityQueue{}
	q.push(timestep.NewTransition(s[0], 0, 0, s[0], 0), 1)
	q.push(timestep.NewTransition(s[1], 0, 0, s[1], 0), 2)
	q.push(timestep.NewTransition(s[2], 0, 0, s[2], 0), 1)

	want := []state.State{s[1], s[0], s[2]}
	for i, w := range want {
		got, _ := q.pop()
		if got.State != w {
			t.Errorf("pop %d = %v, want %v", i, got.State, w)
		}
	}
}
