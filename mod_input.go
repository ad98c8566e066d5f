package spincube

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyEscape int = iota
	keyCount
)

type InputModule struct{}

type Input struct {
	Pressed     [keyCount]bool
	JustPressed [keyCount]bool
}

func (mod InputModule) Install(app *App, cmd *Commands) error {
	cmd.AddResources(&Input{})
	cmd.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	cmd.UseSystem(
		System(exitOnEscapeSystem).
			InStage(Update).
			RunAlways(),
	)
	return nil
}

func inputSystem(s *WindowState, input *Input) {
	if s.windowGlfw == nil {
		return
	}
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.setKey(key, glfw.Press == s.windowGlfw.GetKey(glfwKey))
	}
}

func (input *Input) setKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.Pressed[key] = down
}

func exitOnEscapeSystem(s *WindowState, input *Input, logger Logger) {
	if input.JustPressed[KeyEscape] {
		logger.Debugf("escape pressed")
		s.RequestClose()
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyEscape: glfw.KeyEscape,
}
