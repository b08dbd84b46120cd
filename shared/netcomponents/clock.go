package netcomponents

import "github.com/yohamta/donburi"

type NetClockData struct {
	Remaining int
	Expired   bool
	Text      string
}

var NetClock = donburi.NewComponentType[NetClockData]()
