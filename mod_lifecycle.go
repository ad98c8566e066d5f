package spincube

const (
	StateRunning State = iota
	StateClosed
)

// LifecycleModule ends the run once the window has been asked to close and
// destroys the window after every other teardown system has run.
type LifecycleModule struct{}

func (mod LifecycleModule) Install(app *App, cmd *Commands) error {
	cmd.UseSystem(
		System(closeRequestSystem).
			InStage(Finale).
			InState(OnExecute(StateRunning)),
	)
	cmd.UseSystem(windowTeardownSchedule(destroyWindowSystem))
	return nil
}

// windowTeardownSchedule runs once, on exiting the final state.
func windowTeardownSchedule(system systemFn) systemScheduleBuilder {
	return System(system).
		InStage(Finale).
		InState(OnExit(StateClosed))
}

func closeRequestSystem(s *WindowState, cmd *Commands, logger Logger) {
	if s.ShouldClose() {
		logger.Debugf("window close requested")
		cmd.ChangeState(StateClosed)
	}
}

func destroyWindowSystem(s *WindowState) {
	s.destroy()
}
