package spincube

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame holds the transformation matrices uploaded for one frame.
type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	Normal     mgl32.Mat3
}

// ComputeFrame builds the matrices for elapsed seconds t and a viewport of
// width x height pixels.
func ComputeFrame(scene SceneConfig, t float64, width, height int) Frame {
	model := ModelMatrix(t)
	return Frame{
		Projection: ProjectionMatrix(scene.Camera, width, height),
		View:       mgl32.LookAtV(scene.Camera.Position, scene.Camera.Target, scene.Camera.Up),
		Model:      model,
		Normal:     NormalMatrix(model),
	}
}

func ProjectionMatrix(cam Camera, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(cam.FovY), aspect, cam.Near, cam.Far)
}

// ModelMatrix places the cube 4 units in front of the origin, moves it along
// a Lissajous-like orbit and spins it around Y and X.
func ModelMatrix(t float64) mgl32.Mat4 {
	f := float32(t) * 0.3
	sin := func(x float32) float32 { return float32(math.Sin(float64(x))) }
	cos := func(x float32) float32 { return float32(math.Cos(float64(x))) }

	model := mgl32.Translate3D(0, 0, -4)
	model = model.Mul4(mgl32.Translate3D(
		sin(2.1*f)*0.5,
		cos(1.7*f)*0.5,
		sin(1.3*f)*cos(1.5*f)*2.0,
	))
	model = model.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(t) * 45)))
	model = model.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(t) * 81)))
	return model
}

// NormalMatrix maps normals from model to world space: the transpose of the
// inverse of the model's upper 3x3 block.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
