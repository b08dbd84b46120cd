package components

import "github.com/yohamta/donburi"

// ClockData is the session countdown. This is a singleton component -
// only one clock exists per session.
type ClockData struct {
	Duration  int // total seconds
	Remaining int // seconds left, never negative
	Expired   bool
}

var Clock = donburi.NewComponentType[ClockData]()
