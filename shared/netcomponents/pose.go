package netcomponents

import "github.com/yohamta/donburi"

type NetPoseData struct {
	X, Y    float64
	Angle   float64
	Scale   float64
	Visible bool
	Solid   bool
	Kind    string
}

var NetPose = donburi.NewComponentType[NetPoseData]()

// LerpNetPose interpolates position, angle and scale between two poses.
// Visibility and solidity are discrete and snap to the newer state.
func LerpNetPose(from, to NetPoseData, t float64) *NetPoseData {
	return &NetPoseData{
		X:       from.X + (to.X-from.X)*t,
		Y:       from.Y + (to.Y-from.Y)*t,
		Angle:   from.Angle + (to.Angle-from.Angle)*t,
		Scale:   from.Scale + (to.Scale-from.Scale)*t,
		Visible: to.Visible,
		Solid:   to.Solid,
		Kind:    to.Kind,
	}
}
