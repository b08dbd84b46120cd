package course

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a TMX file into a Course. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS. Obstacles come from an "Obstacles"
// object group (one object per obstacle, behavior selected by a "kind"
// property), checkpoints from a "Checkpoints" object group with an
// "index" property. Obstacles are ordered left-to-right; the i-th
// checkpoint (by index) follows the i-th obstacle.
func LoadTMX(fsys fs.FS, tmxPath string) (*Course, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	c := &Course{Name: tmxPath}

	var obstacles []ObstacleSpec
	var checkpoints []CheckpointSpec

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				spec, err := obstacleFromObject(o)
				if err != nil {
					return nil, err
				}
				obstacles = append(obstacles, spec)
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				checkpoints = append(checkpoints, CheckpointSpec{
					Index:  o.Properties.GetInt("index"),
					X:      o.X,
					Y:      o.Y,
					Radius: o.Properties.GetFloat("radius"),
				})
			}
		case "Start":
			if len(og.Objects) > 0 {
				c.StartX = og.Objects[0].X
				c.StartY = og.Objects[0].Y
			}
		}
	}

	sort.Slice(obstacles, func(i, j int) bool {
		return obstacles[i].X < obstacles[j].X
	})
	sort.Slice(checkpoints, func(i, j int) bool {
		return checkpoints[i].Index < checkpoints[j].Index
	})

	for i, ob := range obstacles {
		sec := Section{Obstacle: ob}
		if i < len(checkpoints) {
			cp := checkpoints[i]
			sec.Checkpoint = &cp
		}
		c.Sections = append(c.Sections, sec)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	return c, nil
}

func obstacleFromObject(o *tiled.Object) (ObstacleSpec, error) {
	kindName := o.Properties.GetString("kind")
	kind, ok := KindFromName(kindName)
	if !ok {
		return ObstacleSpec{}, &ValidationError{
			Field:  fmt.Sprintf("object %q kind", o.Name),
			Reason: fmt.Sprintf("unknown %q", kindName),
		}
	}

	spec := ObstacleSpec{
		Kind: kind,
		X:    o.X,
		Y:    o.Y,
		W:    o.Width,
		H:    o.Height,
	}

	switch kind {
	case Spinning:
		spec.SpinRate = o.Properties.GetFloat("spinRate")
		spec.InitialAngle = o.Properties.GetFloat("initialAngle")
	case Moving:
		spec.TargetX = o.Properties.GetFloat("targetX")
		spec.TargetY = o.Properties.GetFloat("targetY")
		spec.MovePeriod = o.Properties.GetFloat("movePeriod")
	case Scaling:
		spec.ScaleTo = o.Properties.GetFloat("scaleTo")
		spec.ScalePeriod = o.Properties.GetFloat("scalePeriod")
	case Disappearing:
		spec.DisappearTime = o.Properties.GetFloat("disappearTime")
	}

	return spec, nil
}
