package shaders

import (
	_ "embed"
)

//go:embed spinningcube_vs.glsl
var SpinningCubeVertexGLSL string

//go:embed spinningcube_fs.glsl
var SpinningCubeFragmentGLSL string
