package spincube

import (
	"time"
)

// Time is the frame clock. Start is fixed when the module is installed.
type Time struct {
	Start time.Time
	Time  time.Time
}

// Elapsed returns the seconds between Start and the current frame.
func (t *Time) Elapsed() float64 {
	return t.Time.Sub(t.Start).Seconds()
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) error {
	now := time.Now()
	cmd.AddResources(&Time{
		Start: now,
		Time:  now,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude).RunAlways())
	return nil
}

func timeSystem(timeResource *Time) {
	timeResource.Time = time.Now()
}
