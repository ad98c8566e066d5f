package spincube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight holds the Phong terms of one light.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Material binds the diffuse and specular maps to texture units.
type Material struct {
	Shininess    float32
	DiffuseUnit  int32
	SpecularUnit int32
}

type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

const lightCount = 2

type SceneConfig struct {
	Camera   Camera
	Lights   [lightCount]PointLight
	Material Material
}

func DefaultScene() SceneConfig {
	ambient := mgl32.Vec3{0.2, 0.2, 0.2}
	diffuse := mgl32.Vec3{0.5, 0.5, 0.5}
	specular := mgl32.Vec3{1.0, 1.0, 1.0}

	return SceneConfig{
		Camera: Camera{
			Position: mgl32.Vec3{5, 5, 5},
			Target:   mgl32.Vec3{0, 0, 0},
			Up:       mgl32.Vec3{0, 1, 0},
			FovY:     40,
			Near:     0.1,
			Far:      1000,
		},
		Lights: [lightCount]PointLight{
			{Position: mgl32.Vec3{-2, 4, -1}, Ambient: ambient, Diffuse: diffuse, Specular: specular},
			{Position: mgl32.Vec3{5, 5, 5}, Ambient: ambient, Diffuse: diffuse, Specular: specular},
		},
		Material: Material{
			Shininess:    64,
			DiffuseUnit:  0,
			SpecularUnit: 1,
		},
	}
}
