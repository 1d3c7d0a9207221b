package state

import "testing"

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumStates; i++ {
		s := FromIndex(i)
		if got := s.Index(); got != i {
			t.Fatalf("Index(FromIndex(%d)) = %d", i, got)
		}
	}
}

func TestIndexMostSignificantFirst(t *testing.T) {
	var s State
	s[DangerFront] = true
	if got, want := s.Index(), 1<<(NumFeatures-1); got != want {
		t.Errorf("DangerFront index = %d, want %d", got, want)
	}

	s = State{}
	s[GoalEast] = true
	if got := s.Index(); got != 1 {
		t.Errorf("GoalEast index = %d, want 1", got)
	}
}

func TestNewSetsSingleHeading(t *testing.T) {
	for h := North; h <= East; h++ {
		s := New([3]bool{true, false, true}, h, [4]bool{false, true, true,
			false})
		if err := s.Validate(); err != nil {
			t.Fatalf("heading %v: %v", h, err)
		}
		if got := s.Heading(); got != h {
			t.Errorf("Heading() = %v, want %v", got, h)
		}
		if !s.Has(DangerFront) || s.Has(DangerLeft) || !s.Has(DangerRight) {
			t.Errorf("danger features not copied: %v", s)
		}
		if s.Has(GoalNorth) || !s.Has(GoalSouth) || !s.Has(GoalWest) ||
			s.Has(GoalEast) {
			t.Errorf("goal features not copied: %v", s)
		}
	}
}

func TestValidateRejectsBadHeadings(t *testing.T) {
	tests := []struct {
		name string
		s    State
	}{
		{"none", State{}},
		{"two", func() State {
			var s State
			s[GoingNorth], s[GoingEast] = true, true
			return s
		}()},
	}

	for _, test := range tests {
		if err := test.s.Validate(); err == nil {
			t.Errorf("%s: expected validation error", test.name)
		}
	}
}

func TestHeadingPanicsOnInvalidState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	State{}.Heading()
}

func TestStatesAreComparable(t *testing.T) {
	a := New([3]bool{}, West, [4]bool{true})
	b := New([3]bool{}, West, [4]bool{true})
	m := map[State]int{a: 1}
	if m[b] != 1 {
		t.Error("equal states should map to the same key")
	}
}
