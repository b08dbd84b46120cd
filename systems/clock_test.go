package systems

import (
	"testing"

	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestClockCountsDownAndExpiresOnce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, 5)

	want := []int{4, 3, 2, 1}
	for i, w := range want {
		remaining, expired := TickClock(e)
		if remaining != w || expired {
			t.Fatalf("tick %d: got (%d, %v), want (%d, false)", i+1, remaining, expired, w)
		}
	}

	remaining, expired := TickClock(e)
	if remaining != 0 || !expired {
		t.Fatalf("final tick: got (%d, %v), want (0, true)", remaining, expired)
	}

	// Further ticks never go negative and never re-fire the terminal
	// transition.
	for i := 0; i < 3; i++ {
		remaining, expired = TickClock(e)
		if remaining != 0 || expired {
			t.Fatalf("post-expiry tick: got (%d, %v), want (0, false)", remaining, expired)
		}
	}

	clockEntry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(clockEntry)
	if clock.Remaining < 0 {
		t.Fatalf("remaining went negative: %d", clock.Remaining)
	}
	if !clock.Expired {
		t.Fatal("clock not marked expired")
	}
}

func TestTimerText(t *testing.T) {
	cases := []struct {
		clock components.ClockData
		want  string
	}{
		{components.ClockData{Remaining: 125}, "Time Remaining: 2:05"},
		{components.ClockData{Remaining: 60}, "Time Remaining: 1:00"},
		{components.ClockData{Remaining: 5}, "Time Remaining: 0:05"},
		{components.ClockData{Remaining: 0, Expired: true}, "Time's Up!"},
	}
	for _, c := range cases {
		if got := TimerText(&c.clock); got != c.want {
			t.Errorf("TimerText(%+v) = %q, want %q", c.clock, got, c.want)
		}
	}
}
