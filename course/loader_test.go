package course

import (
	"math"
	"os"
	"testing"
)

func TestLoadTMXCourse(t *testing.T) {
	c, err := LoadTMX(os.DirFS("testdata"), "course.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}

	if c.StartX != 32 || c.StartY != 256 {
		t.Errorf("start = (%v, %v), want (32, 256)", c.StartX, c.StartY)
	}

	if len(c.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(c.Sections))
	}

	spinner := c.Sections[0].Obstacle
	if spinner.Kind != Spinning {
		t.Errorf("section 1 kind = %v, want spinning", spinner.Kind)
	}
	if math.Abs(spinner.SpinRate-1.5708) > 1e-9 {
		t.Errorf("spinRate = %v, want 1.5708", spinner.SpinRate)
	}
	if spinner.X != 256 || spinner.W != 160 || spinner.H != 16 {
		t.Errorf("spinner geometry = (%v, %v, %v)", spinner.X, spinner.W, spinner.H)
	}

	mover := c.Sections[1].Obstacle
	if mover.Kind != Moving {
		t.Errorf("section 2 kind = %v, want moving", mover.Kind)
	}
	if mover.TargetX != 512 || mover.TargetY != 128 || mover.MovePeriod != 4 {
		t.Errorf("mover params = (%v, %v, %v)", mover.TargetX, mover.TargetY, mover.MovePeriod)
	}

	cp1 := c.Sections[0].Checkpoint
	if cp1 == nil || cp1.Index != 1 || cp1.X != 416 || cp1.Radius != 24 {
		t.Errorf("checkpoint 1 = %+v", cp1)
	}
	cp2 := c.Sections[1].Checkpoint
	if cp2 == nil || cp2.Index != 2 || cp2.Y != 128 {
		t.Errorf("checkpoint 2 = %+v", cp2)
	}
}

func TestLoadTMXMissingFile(t *testing.T) {
	if _, err := LoadTMX(os.DirFS("testdata"), "nope.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
