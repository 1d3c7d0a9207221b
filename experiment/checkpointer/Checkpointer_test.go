package checkpointer

import (
	"errors"
	"strings"
	"testing"

	"github.com/OverKoder/Jormungandr/state"
	ts "github.com/OverKoder/Jormungandr/timestep"
)

// recorder is a Serializable that records the files it is saved to
type recorder struct {
	saved []string
	err   error
}

func (r *recorder) GobEncode() ([]byte, error) { return nil, nil }
func (r *recorder) GobDecode([]byte) error { return nil }

func (r *recorder) Save(filename string) error {
	r.saved = append(r.saved, filename)
	return r.err
}

func last(n int) ts.TimeStep {
	return ts.New(ts.Last, 0, state.State{}, n)
}

func TestEpisodicCheckpointsOnEpisodeEnd(t *testing.T) {
	r := &recorder{}
	c, err := NewEpisodic(2, r, func() string { return "q.bin" })
	if err != nil {
		t.Fatal(err)
	}

	steps := []ts.TimeStep{
		ts.New(ts.First, 0, state.State{}, 0),
		ts.New(ts.Mid, -1, state.State{}, 1),
		last(2),
		last(5),
		last(1),
		last(3),
	}
	for _, step := range steps {
		if err := c.Checkpoint(step); err != nil {
			t.Fatal(err)
		}
	}

	if len(r.saved) != 2 {
		t.Errorf("saved %d times, want 2", len(r.saved))
	}
}

func TestEpisodicPropagatesErrors(t *testing.T) {
	r := &recorder{err: errors.New("disk full")}
	c, err := NewEpisodic(1, r, func() string { return "q.bin" })
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Checkpoint(last(1)); err == nil {
		t.Error("expected error")
	}
}

func TestNewEpisodicRejectsBadInterval(t *testing.T) {
	if _, err := NewEpisodic(0, &recorder{}, nil); err == nil {
		t.Error("zero interval should be rejected")
	}
}

func TestNaming(t *testing.T) {
	name, err := Overwrite.Filenamer("out/q.bin")
	if err != nil {
		t.Fatal(err)
	}
	if name() != "out/q.bin" || name() != "out/q.bin" {
		t.Error("overwrite should always return the same file")
	}

	name, err = Enumerate.Filenamer("out/q.bin")
	if err != nil {
		t.Fatal(err)
	}
	if got := name(); got != "out/q1.bin" {
		t.Errorf("first enumerated file = %v, want out/q1.bin", got)
	}
	if got := name(); got != "out/q2.bin" {
		t.Errorf("second enumerated file = %v, want out/q2.bin", got)
	}

	name, err = Timestamp.Filenamer("q.bin")
	if err != nil {
		t.Fatal(err)
	}
	if got := name(); !strings.HasPrefix(got, "q-") ||
		!strings.HasSuffix(got, ".bin") {
		t.Errorf("timestamped file = %v", got)
	}

	if _, err := Naming("random").Filenamer("q.bin"); err == nil {
		t.Error("unknown naming should be rejected")
	}
}
