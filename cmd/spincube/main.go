package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/spincube"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 640, "Initial window width")
	height := flag.Int("height", 480, "Initial window height")
	title := flag.String("title", "My spinning cube", "Window title")
	vertexShader := flag.String("vs", "", "Vertex shader file (built-in shader when empty)")
	fragmentShader := flag.String("fs", "", "Fragment shader file (built-in shader when empty)")
	diffuseMap := flag.String("diffuse", spincube.DefaultDiffuseMap, "Diffuse map image")
	specularMap := flag.String("specular", spincube.DefaultSpecularMap, "Specular map image")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := spincube.NewDefaultLogger("spincube", *debug)

	app, err := spincube.NewAppBuilder().
		UseStates(spincube.StateRunning, spincube.StateClosed).
		UseModule(
			spincube.LoggingModule{Logger: logger},
			spincube.NewPlatformWindow(*width, *height, *title),
			spincube.TimeModule{},
			spincube.InputModule{},
			spincube.AssetServerModule{},
			spincube.NewRenderer(*vertexShader, *fragmentShader, *diffuseMap, *specularMap),
			spincube.LifecycleModule{},
		).
		Build()
	if err != nil {
		logger.Errorf("%v", err)
		glfw.Terminate()
		os.Exit(1)
	}

	app.Run()
}
