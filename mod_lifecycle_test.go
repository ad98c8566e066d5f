package spincube

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// windowlessModule stands in for PlatformWindowModule in tests.
type windowlessModule struct {
	ws *WindowState
}

func (m windowlessModule) Install(app *App, cmd *Commands) error {
	cmd.AddResources(m.ws)
	return nil
}

func TestLifecycle_ClosesAfterEscape(t *testing.T) {
	ws := &WindowState{WindowWidth: 640, WindowHeight: 480, logger: NewNopLogger()}
	app := newTestApp(t, true, windowlessModule{ws: ws}, TimeModule{}, InputModule{}, LifecycleModule{})

	frames := 0
	app.UseSystem(System(func(input *Input) {
		frames++
		if frames == 5 {
			input.setKey(KeyEscape, true)
		}
	}).InStage(PreUpdate).RunAlways())

	app.Run()

	assert.Equal(t, 5, frames)
	assert.Equal(t, StateClosed, app.State())
	assert.True(t, ws.ShouldClose())
}

func TestLifecycle_ReleasesRendererBeforeWindowTeardown(t *testing.T) {
	ws := &WindowState{WindowWidth: 640, WindowHeight: 480, logger: NewNopLogger()}
	app := newTestApp(t, true, windowlessModule{ws: ws}, TimeModule{}, LifecycleModule{})

	var order []string
	app.UseSystem(rendererReleaseSchedule(func(ws *WindowState) {
		assert.False(t, ws.destroyed, "GPU objects must go while the context exists")
		order = append(order, "release")
	}))
	app.UseSystem(windowTeardownSchedule(func(ws *WindowState) {
		assert.True(t, ws.destroyed)
		order = append(order, "teardown")
	}))

	ws.RequestClose()
	app.Run()

	assert.Equal(t, []string{"release", "teardown"}, order)
	assert.True(t, ws.destroyed)
	assert.Equal(t, StateClosed, app.State())
}

func TestCloseRequestSystem(t *testing.T) {
	app := newTestApp(t, true)
	ws := &WindowState{}
	cmd := app.Commands()

	closeRequestSystem(ws, cmd, NewNopLogger())
	assert.False(t, app.stateTransitioning)

	ws.RequestClose()
	closeRequestSystem(ws, cmd, NewNopLogger())
	require.True(t, app.stateTransitioning)
	assert.Equal(t, StateClosed, app.nextState)
}

func TestWindowState_resize(t *testing.T) {
	var out bytes.Buffer
	ws := &WindowState{WindowWidth: 640, WindowHeight: 480, logger: newLogger(&out, &bytes.Buffer{}, 0, "", false)}

	ws.resize(1024, 768)

	assert.Equal(t, 1024, ws.WindowWidth)
	assert.Equal(t, 768, ws.WindowHeight)
	assert.Equal(t, "INFO: New viewport: (width: 1024, height: 768)\n", out.String())
}

func TestWindowState_destroyWithoutWindow(t *testing.T) {
	ws := &WindowState{}
	assert.NotPanics(t, func() {
		ws.swapBuffers()
		ws.destroy()
	})
	assert.True(t, ws.destroyed)
}

func TestNewPlatformWindow_Defaults(t *testing.T) {
	m := NewPlatformWindow(0, -1, "")
	assert.Equal(t, 640, m.Width)
	assert.Equal(t, 480, m.Height)
	assert.Equal(t, "My spinning cube", m.Title)

	m = NewPlatformWindow(800, 600, "cube")
	assert.Equal(t, PlatformWindowModule{Width: 800, Height: 600, Title: "cube"}, *m)
}
