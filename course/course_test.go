package course

import (
	"errors"
	"testing"
)

func TestDefaultCourseValidates(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("built-in course failed validation: %v", err)
	}
	cps := c.Checkpoints()
	if len(cps) != 4 {
		t.Fatalf("built-in course has %d checkpoints, want 4", len(cps))
	}
	for i, cp := range cps {
		if cp.Index != i+1 {
			t.Errorf("checkpoint %d has index %d, want %d", i, cp.Index, i+1)
		}
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name string
		c    Course
	}{
		{
			name: "zero spin rate",
			c: Course{Sections: []Section{
				{Obstacle: ObstacleSpec{Kind: Spinning}},
			}},
		},
		{
			name: "negative spin rate",
			c: Course{Sections: []Section{
				{Obstacle: ObstacleSpec{Kind: Spinning, SpinRate: -1}},
			}},
		},
		{
			name: "negative move period",
			c: Course{Sections: []Section{
				{Obstacle: ObstacleSpec{Kind: Moving, MovePeriod: -1}},
			}},
		},
		{
			name: "zero scale period",
			c: Course{Sections: []Section{
				{Obstacle: ObstacleSpec{Kind: Scaling, ScaleTo: 2}},
			}},
		},
		{
			name: "negative scale multiplier",
			c: Course{Sections: []Section{
				{Obstacle: ObstacleSpec{Kind: Scaling, ScaleTo: -2, ScalePeriod: 1}},
			}},
		},
		{
			name: "zero disappear time",
			c: Course{Sections: []Section{
				{Obstacle: ObstacleSpec{Kind: Disappearing}},
			}},
		},
		{
			name: "duplicate checkpoint index",
			c: Course{Sections: []Section{
				{
					Obstacle:   ObstacleSpec{Kind: Spinning, SpinRate: 1},
					Checkpoint: &CheckpointSpec{Index: 1, Radius: 10},
				},
				{
					Obstacle:   ObstacleSpec{Kind: Spinning, SpinRate: 1},
					Checkpoint: &CheckpointSpec{Index: 1, Radius: 10},
				},
			}},
		},
		{
			name: "backward checkpoint index",
			c: Course{Sections: []Section{
				{
					Obstacle:   ObstacleSpec{Kind: Spinning, SpinRate: 1},
					Checkpoint: &CheckpointSpec{Index: 2, Radius: 10},
				},
				{
					Obstacle:   ObstacleSpec{Kind: Spinning, SpinRate: 1},
					Checkpoint: &CheckpointSpec{Index: 1, Radius: 10},
				},
			}},
		},
		{
			name: "zero checkpoint radius",
			c: Course{Sections: []Section{
				{
					Obstacle:   ObstacleSpec{Kind: Spinning, SpinRate: 1},
					Checkpoint: &CheckpointSpec{Index: 1},
				},
			}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.c.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, kind := range []ObstacleKind{Spinning, Moving, Scaling, Disappearing} {
		got, ok := KindFromName(kind.String())
		if !ok || got != kind {
			t.Errorf("KindFromName(%q) = %v, %v", kind.String(), got, ok)
		}
	}
	if _, ok := KindFromName("teleporting"); ok {
		t.Error("KindFromName accepted an unknown kind")
	}
}
