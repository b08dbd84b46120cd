package systems

import (
	"fmt"

	"github.com/automoto/gauntlet/components"
	"github.com/yohamta/donburi/ecs"
)

// TickClock advances the session countdown by one second. Remaining
// stops at zero and the expired transition is reported exactly once,
// on the tick that reaches zero.
func TickClock(ecs *ecs.ECS) (remaining int, justExpired bool) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0, false
	}
	clock := components.Clock.Get(clockEntry)

	if clock.Expired {
		return 0, false
	}

	if clock.Remaining > 0 {
		clock.Remaining--
	}
	if clock.Remaining == 0 {
		clock.Expired = true
		return 0, true
	}
	return clock.Remaining, false
}

// TimerText formats the countdown for display: "Time Remaining: M:SS"
// while running, "Time's Up!" once expired.
func TimerText(clock *components.ClockData) string {
	if clock.Expired {
		return "Time's Up!"
	}
	return fmt.Sprintf("Time Remaining: %d:%02d", clock.Remaining/60, clock.Remaining%60)
}
