// Package course provides the obstacle-course data model: obstacle and
// checkpoint specs, layout validation, the built-in course and a TMX
// loader. It has no dependencies on donburi or resolv — pure data only.
package course

import "fmt"

// ObstacleKind selects one of the four obstacle behaviors.
type ObstacleKind int

const (
	Spinning ObstacleKind = iota
	Moving
	Scaling
	Disappearing
)

func (k ObstacleKind) String() string {
	switch k {
	case Spinning:
		return "spinning"
	case Moving:
		return "moving"
	case Scaling:
		return "scaling"
	case Disappearing:
		return "disappearing"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

// KindFromName maps an authoring name to an ObstacleKind.
func KindFromName(name string) (ObstacleKind, bool) {
	switch name {
	case "spinning":
		return Spinning, true
	case "moving":
		return Moving, true
	case "scaling":
		return Scaling, true
	case "disappearing":
		return Disappearing, true
	}
	return 0, false
}

// ObstacleSpec describes one obstacle placement. Only the fields for the
// given Kind are meaningful.
type ObstacleSpec struct {
	Kind ObstacleKind
	X, Y float64
	W, H float64

	SpinRate     float64 // Spinning: radians per second
	InitialAngle float64

	TargetX, TargetY float64 // Moving: far end of the ping-pong
	MovePeriod       float64 // Moving: seconds per full cycle

	ScaleTo     float64 // Scaling: peak scale multiplier
	ScalePeriod float64 // Scaling: seconds per full cycle

	DisappearTime float64 // Disappearing: seconds per phase
}

// CheckpointSpec describes one checkpoint placement.
type CheckpointSpec struct {
	Index  int
	X, Y   float64
	Radius float64
}

// Section pairs an obstacle with the checkpoint that follows it, if any.
type Section struct {
	Obstacle   ObstacleSpec
	Checkpoint *CheckpointSpec
}

// Course is a static, ordered track layout.
type Course struct {
	Name           string
	StartX, StartY float64
	Sections       []Section
}

// ValidationError reports a bad construction parameter. Fatal at course
// build - a course with a ValidationError never starts animating.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("course validation: %s %s", e.Field, e.Reason)
}

func (s *ObstacleSpec) validate(n int) error {
	field := func(name string) string {
		return fmt.Sprintf("section %d %s %s", n, s.Kind, name)
	}
	switch s.Kind {
	case Spinning:
		if s.SpinRate <= 0 {
			return &ValidationError{Field: field("spinRate"), Reason: "must be positive"}
		}
	case Moving:
		if s.MovePeriod <= 0 {
			return &ValidationError{Field: field("movePeriod"), Reason: "must be positive"}
		}
	case Scaling:
		if s.ScalePeriod <= 0 {
			return &ValidationError{Field: field("scalePeriod"), Reason: "must be positive"}
		}
		if s.ScaleTo <= 0 {
			return &ValidationError{Field: field("scaleTo"), Reason: "must be positive"}
		}
	case Disappearing:
		if s.DisappearTime <= 0 {
			return &ValidationError{Field: field("disappearTime"), Reason: "must be positive"}
		}
	default:
		return &ValidationError{Field: field("kind"), Reason: "unknown"}
	}
	return nil
}

// Validate checks every obstacle parameter and the checkpoint ordering:
// indices must be unique and strictly increasing along the course.
func (c *Course) Validate() error {
	lastIndex := 0
	for i, sec := range c.Sections {
		if err := sec.Obstacle.validate(i + 1); err != nil {
			return err
		}
		cp := sec.Checkpoint
		if cp == nil {
			continue
		}
		if cp.Index <= lastIndex {
			return &ValidationError{
				Field:  fmt.Sprintf("checkpoint %d index", cp.Index),
				Reason: fmt.Sprintf("must be greater than %d", lastIndex),
			}
		}
		if cp.Radius <= 0 {
			return &ValidationError{
				Field:  fmt.Sprintf("checkpoint %d radius", cp.Index),
				Reason: "must be positive",
			}
		}
		lastIndex = cp.Index
	}
	return nil
}

// Checkpoints returns the course's checkpoints in sequence order.
func (c *Course) Checkpoints() []CheckpointSpec {
	var cps []CheckpointSpec
	for _, sec := range c.Sections {
		if sec.Checkpoint != nil {
			cps = append(cps, *sec.Checkpoint)
		}
	}
	return cps
}
