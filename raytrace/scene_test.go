package raytrace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func mirrorCorridor(reflection float64) *Scene {
	floor := NewPlane(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	ceiling := NewPlane(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	floor.Mat.Reflection = reflection
	ceiling.Mat.Reflection = reflection
	return &Scene{
		Objects:          []Object{floor, ceiling},
		Camera:           mgl64.Vec3{0, 0, 0},
		Ambient:          .05,
		SpecularExponent: 50,
	}
}

func TestScene_TraceStopsAtMaxDepth(t *testing.T) {
	scene := mirrorCorridor(.5)
	down := Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, -1, 0}}

	assert.Equal(t, mgl64.Vec3{}, scene.Trace(down, 0))
	assert.InDelta(t, .05, scene.Trace(down, 1).X(), 1e-9)
	assert.InDelta(t, .05*(1+.5+.25), scene.Trace(down, 3).X(), 1e-9)
	assert.InDelta(t, .05*(1+.5+.25+.125+.0625), scene.Trace(down, 5).X(), 1e-9)
}

func TestScene_TraceMiss(t *testing.T) {
	scene := mirrorCorridor(.5)
	sideways := Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}}
	assert.Equal(t, mgl64.Vec3{}, scene.Trace(sideways, 5))
}

func shadowScene(sphere *Sphere, light mgl64.Vec3) *Scene {
	white := mgl64.Vec3{1, 1, 1}
	objects := []Object{NewPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, white, white)}
	if sphere != nil {
		objects = append(objects, sphere)
	}
	return &Scene{
		Objects:          objects,
		Lights:           []Light{{Position: light, Color: white}},
		Camera:           mgl64.Vec3{2, 1, 0},
		Ambient:          .05,
		SpecularExponent: 50,
	}
}

func TestScene_Shadows(t *testing.T) {
	toOrigin := Ray{Origin: mgl64.Vec3{2, 1, 0}, Direction: mgl64.Vec3{-2, -1, 0}.Normalize()}
	blocker := func() *Sphere { return NewSphere(mgl64.Vec3{0, 1, 0}, .5, mgl64.Vec3{0, 0, 1}) }

	lit := shadowScene(nil, mgl64.Vec3{0, 5, 0}).Trace(toOrigin, 1)
	assert.Greater(t, lit.X(), .5)

	shadowed := shadowScene(blocker(), mgl64.Vec3{0, 5, 0}).Trace(toOrigin, 1)
	assert.InDelta(t, .05, shadowed.X(), 1e-9, "only ambient reaches a shadowed point")

	beyond := shadowScene(blocker(), mgl64.Vec3{0, .3, 0}).Trace(toOrigin, 1)
	assert.Greater(t, beyond.X(), .5, "an object past the light casts no shadow")
}

func TestReflect(t *testing.T) {
	r := reflect(mgl64.Vec3{1, -1, 0}.Normalize(), mgl64.Vec3{0, 1, 0})
	assert.InDelta(t, 1/mgl64.Vec3{1, 1, 0}.Len(), r.X(), 1e-9)
	assert.InDelta(t, 1/mgl64.Vec3{1, 1, 0}.Len(), r.Y(), 1e-9)
}

func TestDefaultScene(t *testing.T) {
	scene := DefaultScene()
	assert.Len(t, scene.Objects, 6)
	assert.Len(t, scene.Lights, 3)
	assert.Equal(t, mgl64.Vec3{0, .35, -1}, scene.Camera)
	assert.Equal(t, .05, scene.Ambient)
	assert.Equal(t, 50.0, scene.SpecularExponent)
}
