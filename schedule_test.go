package spincube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseSystem_StatefulInStatelessAppPanics(t *testing.T) {
	app, err := NewAppBuilder().Build()
	require.NoError(t, err)

	assert.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		app.UseSystem(System(func() {}).InState(OnEnter(StateRunning)))
	})
}

func TestUseSystem_UnknownStagePanics(t *testing.T) {
	app, err := NewAppBuilder().Build()
	require.NoError(t, err)

	assert.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})
}

func TestSystemScheduleBuilder(t *testing.T) {
	sched := System(func() {})
	assert.Equal(t, Update, sched.inStage)
	assert.False(t, sched.stateProvided)

	sched = sched.InStage(Render).InState(OnExit(StateClosed))
	assert.Equal(t, Render, sched.inStage)
	assert.True(t, sched.stateProvided)
	assert.Equal(t, StateClosed, sched.inState)
	assert.Equal(t, exit, sched.inStatePhase)
	assert.False(t, sched.runAlways)

	assert.True(t, sched.RunAlways().runAlways)
	assert.False(t, sched.RunAlways().InState(OnEnter(StateRunning)).runAlways, "a state binding overrides RunAlways")
}
