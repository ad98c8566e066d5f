package spincube

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	DefaultDiffuseMap  = "diffuse_map.jpg"
	DefaultSpecularMap = "specular_map.jpg"
)

// RendererModule sets up the Phong pipeline for the two cubes and draws them
// every frame while the app is running.
type RendererModule struct {
	VertexShaderPath   string // empty: built-in shader
	FragmentShaderPath string // empty: built-in shader
	DiffuseMapPath     string
	SpecularMapPath    string
	Scene              SceneConfig
}

func NewRenderer(vertexShaderPath, fragmentShaderPath, diffuseMapPath, specularMapPath string) *RendererModule {
	if diffuseMapPath == "" {
		diffuseMapPath = DefaultDiffuseMap
	}
	if specularMapPath == "" {
		specularMapPath = DefaultSpecularMap
	}
	return &RendererModule{
		VertexShaderPath:   vertexShaderPath,
		FragmentShaderPath: fragmentShaderPath,
		DiffuseMapPath:     diffuseMapPath,
		SpecularMapPath:    specularMapPath,
		Scene:              DefaultScene(),
	}
}

var (
	ErrNoWindow      = errors.New("renderer needs a window: install PlatformWindowModule first")
	ErrNoAssetServer = errors.New("renderer needs an asset server: install AssetServerModule first")
)

// Texture map kinds, also the texture slots in RendererState.
const (
	diffuseMap = iota
	specularMap
)

var mapKindNames = [...]string{diffuseMap: "diffuse", specularMap: "specular"}

type RendererState struct {
	program  uint32
	vao      uint32
	vbo      uint32
	textures [2]uint32
	uniforms uniformLocations
	draws    []DrawRange
	scene    SceneConfig
}

func (mod RendererModule) Install(app *App, cmd *Commands) error {
	logger := app.Logger()

	if _, ok := resource[WindowState](app); !ok {
		return ErrNoWindow
	}
	assets, ok := resource[AssetServer](app)
	if !ok {
		return ErrNoAssetServer
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("load OpenGL functions: %w", err)
	}
	logger.Infof("Vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Infof("Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Infof("OpenGL version supported %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Infof("GLSL version supported %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	// Only draw onto a pixel if the fragment is closer to the viewer.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	shaderId, err := assets.LoadShader(mod.VertexShaderPath, mod.FragmentShaderPath)
	if err != nil {
		return err
	}
	shader, _ := assets.Shader(shaderId)
	program, err := linkProgram(shader.vertexSource, shader.fragmentSource)
	if err != nil {
		return fmt.Errorf("shader %s: %w", shader.name, err)
	}

	vertices, draws := SceneMesh()
	meshId := assets.LoadMesh(vertices, draws)
	mesh, _ := assets.Mesh(meshId)
	vao, vbo := uploadMesh(mesh.vertices)

	state := &RendererState{
		program:  program,
		vao:      vao,
		vbo:      vbo,
		uniforms: lookupUniforms(program, logger),
		draws:    mesh.draws,
		scene:    mod.Scene,
	}
	state.textures[diffuseMap] = uploadTexture(loadTextureOrFallback(assets, mod.DiffuseMapPath, diffuseMap, logger))
	state.textures[specularMap] = uploadTexture(loadTextureOrFallback(assets, mod.SpecularMapPath, specularMap, logger))

	cmd.AddResources(state)
	cmd.UseSystem(
		System(renderSystem).
			InStage(Render).
			InState(OnExecute(StateRunning)),
	)
	cmd.UseSystem(rendererReleaseSchedule(releaseRendererSystem))
	return nil
}

// rendererReleaseSchedule runs on entering StateClosed. The Render stage
// comes before Finale, so GPU objects go while the context is still current.
func rendererReleaseSchedule(system systemFn) systemScheduleBuilder {
	return System(system).
		InStage(Render).
		InState(OnEnter(StateClosed))
}

// loadTextureOrFallback never fails: a map that cannot be read is logged
// and replaced by the fallback texel of its kind.
func loadTextureOrFallback(assets *AssetServer, path string, kind int, logger Logger) TextureAsset {
	id, err := assets.LoadTexture(path)
	if err != nil {
		logger.Warnf("cant load %s map: %v", mapKindNames[kind], err)
		return fallbackTexel(kind)
	}
	asset, _ := assets.Texture(id)
	logger.Debugf("loaded %s map %s (%dx%d)", mapKindNames[kind], path, asset.width, asset.height)
	return asset
}

func renderSystem(r *RendererState, ws *WindowState, t *Time) {
	frame := ComputeFrame(r.scene, t.Elapsed(), ws.WindowWidth, ws.WindowHeight)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Viewport(0, 0, int32(ws.WindowWidth), int32(ws.WindowHeight))

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	gl.ActiveTexture(gl.TEXTURE0 + uint32(r.scene.Material.DiffuseUnit))
	gl.BindTexture(gl.TEXTURE_2D, r.textures[diffuseMap])
	gl.ActiveTexture(gl.TEXTURE0 + uint32(r.scene.Material.SpecularUnit))
	gl.BindTexture(gl.TEXTURE_2D, r.textures[specularMap])

	r.uniforms.upload(&frame, &r.scene)

	for _, d := range r.draws {
		gl.DrawArrays(gl.TRIANGLES, d.First, d.Count)
	}
}

func releaseRendererSystem(r *RendererState, logger Logger) {
	gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
	logger.Debugf("released GPU resources")
}
