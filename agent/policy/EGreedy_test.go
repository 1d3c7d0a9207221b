package policy

import (
	"math"
	"testing"

	"github.com/OverKoder/Jormungandr/state"
	"gonum.org/v1/gonum/floats"
)

func TestProbabilitiesSumToOne(t *testing.T) {
	values := [][]float64{
		{0, 0, 0},
		{1, 2, 3},
		{-5, 10, 10},
		{0.3, -0.1, 0.2},
	}

	for _, e := range []float64{0, 0.1, 0.5, 1} {
		p, err := NewEGreedy(Config{Epsilon: e}, 1)
		if err != nil {
			t.Fatal(err)
		}

		for _, v := range values {
			probs := p.ActionProbabilities(v)
			if sum := floats.Sum(probs); math.Abs(sum-1) > 1e-12 {
				t.Errorf("ε = %v values %v: probabilities sum to %v", e, v,
					sum)
			}
			greedy := p.GreedyProbabilities(v)
			if sum := floats.Sum(greedy); sum != 1 {
				t.Errorf("greedy probabilities sum to %v", sum)
			}
		}
	}
}

func TestActionProbabilities(t *testing.T) {
	p, err := NewEGreedy(Config{Epsilon: 0.3}, 1)
	if err != nil {
		t.Fatal(err)
	}

	probs := p.ActionProbabilities([]float64{1, 5, 2})
	want := []float64{0.1, 0.8, 0.1}
	if !floats.EqualApprox(probs, want, 1e-12) {
		t.Errorf("ActionProbabilities = %v, want %v", probs, want)
	}
}

func TestGreedyTieBreak(t *testing.T) {
	if a := GreedyAction([]float64{3, 3, 1}); a != state.Straight {
		t.Errorf("GreedyAction = %v, want Straight", a)
	}
	if a := GreedyAction([]float64{0, 2, 2}); a != state.Left {
		t.Errorf("GreedyAction = %v, want Left", a)
	}
}

func TestZeroEpsilonIsGreedy(t *testing.T) {
	p := NewGreedy(7)
	for i := 0; i < 1000; i++ {
		if a := p.SelectAction([]float64{0, 0, 1}); a != state.Right {
			t.Fatalf("greedy policy selected %v", a)
		}
	}
}

func TestFullEpsilonExplores(t *testing.T) {
	p, err := NewEGreedy(Config{Epsilon: 1}, 3)
	if err != nil {
		t.Fatal(err)
	}

	counts := make([]int, state.NumActions)
	n := 30000
	for i := 0; i < n; i++ {
		counts[p.SelectAction([]float64{0, 0, 1})]++
	}
	for a, c := range counts {
		if frac := float64(c) / float64(n); math.Abs(frac-1.0/3) > 0.02 {
			t.Errorf("action %v selected with frequency %v", state.Action(a),
				frac)
		}
	}
}

func TestEpsilonDecay(t *testing.T) {
	p, err := NewEGreedy(Config{Epsilon: 1, EpsilonEnd: 0, EpsilonDecay: 10},
		1)
	if err != nil {
		t.Fatal(err)
	}

	values := []float64{0, 1, 0}
	p.SelectAction(values)
	if want := math.Exp(-0.1); math.Abs(p.Epsilon()-want) > 1e-12 {
		t.Errorf("ε after one step = %v, want %v", p.Epsilon(), want)
	}

	// exp(-t/10) < 1e-3 once t > 10 * ln(1000) ≈ 69.08
	for i := 1; i < 70; i++ {
		p.SelectAction(values)
	}
	if p.Epsilon() != 0 {
		t.Errorf("ε = %v after %d steps, want 0", p.Epsilon(), p.Steps())
	}

	// Decay has stopped for good
	p.SelectAction(values)
	if p.Epsilon() != 0 {
		t.Errorf("ε = %v, want 0", p.Epsilon())
	}
}

func TestFixedEpsilon(t *testing.T) {
	p, err := NewEGreedy(Config{Epsilon: 0.2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		p.SelectAction([]float64{0, 0, 0})
	}
	if p.Epsilon() != 0.2 {
		t.Errorf("ε = %v, want 0.2", p.Epsilon())
	}
}

func TestConfigValidate(t *testing.T) {
	invalid := []Config{
		{Epsilon: -0.1},
		{Epsilon: 1.1},
		{Epsilon: 0.5, EpsilonEnd: 2},
		{Epsilon: 0.5, EpsilonDecay: -1},
	}
	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("config %+v should be invalid", c)
		}
	}
}

func TestWrongValueCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewGreedy(1).SelectAction([]float64{1, 2})
}
