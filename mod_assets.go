package spincube

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/gekko3d/spincube/shaders"
)

var ErrTextureDecode = errors.New("texture decode failed")

type AssetId string

// AssetServer keeps the CPU-side copies of everything the renderer uploads.
type AssetServer struct {
	meshes   map[AssetId]MeshAsset
	shaders  map[AssetId]ShaderAsset
	textures map[AssetId]TextureAsset
}

type AssetServerModule struct{}

type MeshAsset struct {
	vertices []Vertex
	draws    []DrawRange
}

type ShaderAsset struct {
	name           string
	vertexSource   string
	fragmentSource string
}

// TextureAsset is tightly packed 8-bit RGB, bottom row first.
type TextureAsset struct {
	texels []uint8
	width  uint32
	height uint32
}

func (AssetServerModule) Install(app *App, cmd *Commands) error {
	cmd.AddResources(NewAssetServer())
	return nil
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:   make(map[AssetId]MeshAsset),
		shaders:  make(map[AssetId]ShaderAsset),
		textures: make(map[AssetId]TextureAsset),
	}
}

func (server *AssetServer) LoadMesh(vertices []Vertex, draws []DrawRange) AssetId {
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		vertices: vertices,
		draws:    draws,
	}
	return id
}

// LoadShader reads the vertex and fragment sources from disk. An empty path
// selects the built-in source for that stage.
func (server *AssetServer) LoadShader(vertexPath, fragmentPath string) (AssetId, error) {
	vs, err := readShaderSource(vertexPath, shaders.SpinningCubeVertexGLSL)
	if err != nil {
		return "", err
	}
	fs, err := readShaderSource(fragmentPath, shaders.SpinningCubeFragmentGLSL)
	if err != nil {
		return "", err
	}

	id := makeAssetId()
	server.shaders[id] = ShaderAsset{
		name:           shaderName(vertexPath) + "+" + shaderName(fragmentPath),
		vertexSource:   vs,
		fragmentSource: fs,
	}
	return id, nil
}

func shaderName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func readShaderSource(path, builtin string) (string, error) {
	if path == "" {
		return builtin, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}
	return string(data), nil
}

func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("open texture: %w", err)
	}
	defer file.Close()

	asset, err := DecodeTexture(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}

	id := makeAssetId()
	server.textures[id] = asset
	return id, nil
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	m, ok := server.meshes[id]
	return m, ok
}

func (server *AssetServer) Shader(id AssetId) (ShaderAsset, bool) {
	s, ok := server.shaders[id]
	return s, ok
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	t, ok := server.textures[id]
	return t, ok
}

// DecodeTexture decodes a JPEG or PNG image into bottom-up RGB texels, the
// row order GL expects for texture coordinate (0,0).
func DecodeTexture(r io.Reader) (TextureAsset, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return TextureAsset{}, fmt.Errorf("%w: %w", ErrTextureDecode, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return TextureAsset{}, fmt.Errorf("%w: empty image", ErrTextureDecode)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	texels := make([]uint8, 0, width*height*3)
	for y := height - 1; y >= 0; y-- {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			texels = append(texels, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return TextureAsset{
		texels: texels,
		width:  uint32(width),
		height: uint32(height),
	}, nil
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
