package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/planner"
	"github.com/spf13/cobra"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "jormungandr"}
	addFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { configFile = "" })
	return cmd
}

func TestConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "kind: jormungandr\ndef:\n  episodes: 50\n  algorithm: qlearning\n" +
		"  env:\n    width: 9\n    height: 9\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCommand(t, "--config", path, "--episodes", "7",
		"--planner", "prioritized", "--planning-steps", "3")
	c, err := config(cmd.Flags(), false)
	if err != nil {
		t.Fatal(err)
	}

	if c.Episodes != 7 {
		t.Errorf("episodes = %d, want the flag value 7", c.Episodes)
	}
	if c.Algorithm != agent.QLearning {
		t.Errorf("algorithm = %v, want the file value", c.Algorithm)
	}
	if c.Env.Width != 9 || c.Env.Height != 9 {
		t.Errorf("board = %dx%d, want 9x9", c.Env.Width, c.Env.Height)
	}
	if c.Planner.Type != planner.PrioritizedType || c.Planner.PlanningSteps != 3 {
		t.Errorf("planner = %+v", c.Planner)
	}
	if c.Test {
		t.Error("train should not set test mode")
	}
}

func TestConfigRejectsInvalidFlags(t *testing.T) {
	cmd := newTestCommand(t, "--algorithm", "nStepSarsa", "--n", "0",
		"--width", "20", "--height", "20")
	if _, err := config(cmd.Flags(), true); err == nil {
		t.Error("n = 0 should be rejected for n-step methods")
	}
}
