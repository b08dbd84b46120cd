package systems

import (
	"testing"

	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/course"
	"github.com/automoto/gauntlet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestCourse(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	c := &course.Course{
		StartX: 32,
		StartY: 256,
		Sections: []course.Section{
			{
				Obstacle:   course.ObstacleSpec{Kind: course.Spinning, X: 256, Y: 256, W: 160, H: 16, SpinRate: 1},
				Checkpoint: &course.CheckpointSpec{Index: 1, X: 416, Y: 256, Radius: 24},
			},
			{
				Obstacle:   course.ObstacleSpec{Kind: course.Disappearing, X: 512, Y: 256, W: 96, H: 16, DisappearTime: 2},
				Checkpoint: &course.CheckpointSpec{Index: 2, X: 704, Y: 128, Radius: 24},
			},
		},
	}
	if _, err := factory.BuildCourse(e, c); err != nil {
		t.Fatalf("BuildCourse: %v", err)
	}
	return e
}

func points(t *testing.T, e *ecs.ECS, r *Roster, id string) (int, components.Vector) {
	t.Helper()
	entry, ok := r.Entry(e.World, id)
	if !ok {
		t.Fatalf("player %s not tracked", id)
	}
	p := components.Progress.Get(entry)
	return p.Points, p.Checkpoint
}

func TestCheckpointScenario(t *testing.T) {
	e := newTestCourse(t)
	r := NewRoster()

	r.Join(e, "p1")
	pts, cp := points(t, e, r, "p1")
	if pts != 0 {
		t.Fatalf("points after join = %d, want 0", pts)
	}
	if cp.X != 32 || cp.Y != 256 {
		t.Fatalf("checkpoint after join = %+v, want course start", cp)
	}

	if !TouchCheckpoint(e, r, "p1", 1) {
		t.Fatal("first touch of checkpoint 1 did not award")
	}
	pts, cp = points(t, e, r, "p1")
	if pts != 10 {
		t.Fatalf("points after checkpoint 1 = %d, want 10", pts)
	}
	if cp.X != 416 || cp.Y != 256 {
		t.Fatalf("stored checkpoint = %+v, want (416, 256)", cp)
	}

	// Re-touching the stored checkpoint awards nothing.
	if TouchCheckpoint(e, r, "p1", 1) {
		t.Fatal("re-touch of stored checkpoint awarded")
	}
	if pts, _ := points(t, e, r, "p1"); pts != 10 {
		t.Fatalf("points after re-touch = %d, want 10", pts)
	}

	if !TouchCheckpoint(e, r, "p1", 2) {
		t.Fatal("touch of checkpoint 2 did not award")
	}
	pts, cp = points(t, e, r, "p1")
	if pts != 20 {
		t.Fatalf("points after checkpoint 2 = %d, want 20", pts)
	}
	if cp.X != 704 || cp.Y != 128 {
		t.Fatalf("stored checkpoint = %+v, want (704, 128)", cp)
	}
}

// Touching a different checkpoint than the stored one always awards,
// even if it is earlier in the sequence. Progress is not monotonic;
// only the stored position gates the award.
func TestTouchingEarlierCheckpointReAwards(t *testing.T) {
	e := newTestCourse(t)
	r := NewRoster()
	r.Join(e, "p1")

	TouchCheckpoint(e, r, "p1", 1)
	TouchCheckpoint(e, r, "p1", 2)

	if !TouchCheckpoint(e, r, "p1", 1) {
		t.Fatal("going back to checkpoint 1 did not award")
	}
	if pts, _ := points(t, e, r, "p1"); pts != 30 {
		t.Fatalf("points after backtrack = %d, want 30", pts)
	}
}

func TestContactFromUntrackedActorIsIgnored(t *testing.T) {
	e := newTestCourse(t)
	r := NewRoster()

	if TouchCheckpoint(e, r, "ghost", 1) {
		t.Fatal("untracked actor was awarded points")
	}
}

func TestContactWithUnknownIndexIsIgnored(t *testing.T) {
	e := newTestCourse(t)
	r := NewRoster()
	r.Join(e, "p1")

	if TouchCheckpoint(e, r, "p1", 99) {
		t.Fatal("unknown checkpoint index was awarded")
	}
	if pts, _ := points(t, e, r, "p1"); pts != 0 {
		t.Fatalf("points = %d, want 0", pts)
	}
}

func TestCheckpointAtResolvesContactPosition(t *testing.T) {
	e := newTestCourse(t)

	cp, ok := CheckpointAt(e, 416, 256)
	if !ok {
		t.Fatal("no checkpoint at (416, 256)")
	}
	if cp.Index != 1 {
		t.Fatalf("checkpoint index = %d, want 1", cp.Index)
	}

	if _, ok := CheckpointAt(e, 5000, 5000); ok {
		t.Fatal("found a checkpoint far from the course")
	}
}

func TestLeaveEvictsProgress(t *testing.T) {
	e := newTestCourse(t)
	r := NewRoster()
	r.Join(e, "p1")
	r.Join(e, "p2")

	if r.Count() != 2 {
		t.Fatalf("count = %d, want 2", r.Count())
	}

	r.Leave(e, "p1")
	if r.Count() != 1 {
		t.Fatalf("count after leave = %d, want 1", r.Count())
	}
	if _, ok := r.Entry(e.World, "p1"); ok {
		t.Fatal("p1 still tracked after leave")
	}
	if TouchCheckpoint(e, r, "p1", 1) {
		t.Fatal("contact for evicted player was awarded")
	}
}

func TestLeaderPicksHighestPoints(t *testing.T) {
	e := newTestCourse(t)
	r := NewRoster()
	r.Join(e, "p1")
	r.Join(e, "p2")

	TouchCheckpoint(e, r, "p1", 1)
	TouchCheckpoint(e, r, "p2", 1)
	TouchCheckpoint(e, r, "p2", 2)

	id, pts := r.Leader(e.World)
	if id != "p2" || pts != 20 {
		t.Fatalf("leader = %s/%d, want p2/20", id, pts)
	}
}
