package spincube

// PlatformWindowModule creates the single GLFW window (WindowState) with a
// current GL context and makes it available as a resource for the renderer
// and input modules. Install is idempotent: if a WindowState resource already
// exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	if title == "" {
		title = "My spinning cube"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) error {
	if _, ok := resource[WindowState](app); ok {
		return nil
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title, app.Logger())
	if err != nil {
		return err
	}
	app.Logger().Infof("Starting viewport: (width: %d, height: %d)", ws.WindowWidth, ws.WindowHeight)

	cmd.AddResources(ws)
	cmd.UseSystem(System(swapBuffersSystem).InStage(PostRender).RunAlways())
	return nil
}

func swapBuffersSystem(s *WindowState) {
	s.swapBuffers()
}
