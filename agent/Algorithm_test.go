package agent

import "testing"

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"sarsa":          Sarsa,
		"SARSA":          Sarsa,
		"QLearning":      QLearning,
		"nstepsarsa":     NStepSarsa,
		"NSTEPOFFPOLICY": NStepOffPolicy,
	}
	for tag, want := range tests {
		got, err := ParseAlgorithm(tag)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", tag, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", tag, got, want)
		}
	}

	if _, err := ParseAlgorithm("expectedSarsa"); err == nil {
		t.Error("unknown algorithm should fail to parse")
	}
}

func TestAlgorithmKinds(t *testing.T) {
	if Sarsa.NStep() || QLearning.NStep() {
		t.Error("one-step algorithms reported as n-step")
	}
	if !NStepSarsa.NStep() || !NStepOffPolicy.NStep() {
		t.Error("n-step algorithms not reported as n-step")
	}
	if !NStepOffPolicy.OffPolicy() || NStepSarsa.OffPolicy() {
		t.Error("only nStepOffPolicy is off-policy")
	}
}
