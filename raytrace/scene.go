package raytrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// surfaceBias lifts secondary ray origins off the surface they leave.
const surfaceBias = 1e-4

type Light struct {
	Position mgl64.Vec3
	Color    mgl64.Vec3
}

type Scene struct {
	Objects []Object
	Lights  []Light
	Camera  mgl64.Vec3

	// Ambient is added to every channel of every hit.
	Ambient          float64
	SpecularExponent float64
}

// DefaultScene is three spheres over a checkerboard, a triangle and a
// two-element triangle strip, lit by three coloured point lights.
func DefaultScene() *Scene {
	strip, _ := NewTriangleStrip([]mgl64.Vec3{
		{-.6, 1.8, 3}, {0, 1.5, 3}, {.5, 1.9, 3}, {1.6, 1.3, 3},
	}, mgl64.Vec3{1, 0, 0})

	return &Scene{
		Objects: []Object{
			NewSphere(mgl64.Vec3{.75, .1, 1}, .6, mgl64.Vec3{0, 0, 1}),
			NewSphere(mgl64.Vec3{-.75, .1, 2.25}, .6, mgl64.Vec3{.5, .223, .5}),
			NewSphere(mgl64.Vec3{-2.75, .1, 3.5}, .6, mgl64.Vec3{1, .572, .184}),
			NewPlane(mgl64.Vec3{0, -.5, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, 0}),
			NewTriangle(mgl64.Vec3{-.4, .4, 3}, mgl64.Vec3{0, -.5, 3}, mgl64.Vec3{.5, .5, 3}, mgl64.Vec3{1, .5, 0}),
			strip,
		},
		Lights: []Light{
			{Position: mgl64.Vec3{5, 5, -10}, Color: mgl64.Vec3{3, 1, 1}},
			{Position: mgl64.Vec3{3, 3, 1}, Color: mgl64.Vec3{2, 2, 1}},
			{Position: mgl64.Vec3{-10, 4, -20}, Color: mgl64.Vec3{3, 3, 3}},
		},
		Camera:           mgl64.Vec3{0, .35, -1},
		Ambient:          .05,
		SpecularExponent: 50,
	}
}

type hit struct {
	object  int
	surface Surface
	point   mgl64.Vec3
	normal  mgl64.Vec3
}

func (s *Scene) nearest(r Ray) (hit, bool) {
	best := math.Inf(1)
	h := hit{object: -1}
	for i, obj := range s.Objects {
		if t, surface := obj.Intersect(r); t < best {
			best = t
			h.object, h.surface = i, surface
		}
	}
	if h.surface == nil {
		return h, false
	}
	h.point = r.At(best)
	h.normal = h.surface.Normal(h.point)
	// Triangles and planes are two-sided.
	if h.normal.Dot(r.Direction) > 0 {
		h.normal = h.normal.Mul(-1)
	}
	return h, true
}

// shade applies ambient, Lambert and Blinn-Phong terms for every light that
// is not blocked by another object.
func (s *Scene) shade(h hit) mgl64.Vec3 {
	color := h.surface.Color(h.point)
	mat := h.surface.Material()
	out := mgl64.Vec3{s.Ambient, s.Ambient, s.Ambient}
	toCamera := s.Camera.Sub(h.point).Normalize()

	for _, light := range s.Lights {
		toLight := light.Position.Sub(h.point)
		distance := toLight.Len()
		toLight = toLight.Normalize()
		if s.occluded(h, toLight, distance) {
			continue
		}
		lambert := math.Max(h.normal.Dot(toLight), 0)
		out = out.Add(color.Mul(mat.Diffuse * lambert))
		phong := math.Pow(math.Max(h.normal.Dot(toLight.Add(toCamera).Normalize()), 0), s.SpecularExponent)
		out = out.Add(light.Color.Mul(mat.Specular * phong))
	}
	return out
}

// occluded reports whether an object other than the one hit lies between
// the point and the light.
func (s *Scene) occluded(h hit, toLight mgl64.Vec3, distance float64) bool {
	shadow := Ray{Origin: h.point.Add(h.normal.Mul(surfaceBias)), Direction: toLight}
	for i, obj := range s.Objects {
		if i == h.object {
			continue
		}
		if t, _ := obj.Intersect(shadow); t < distance {
			return true
		}
	}
	return false
}

// Trace follows r through at most maxDepth bounces. Each bounce adds its
// shaded colour scaled by the product of the reflection coefficients seen
// so far.
func (s *Scene) Trace(r Ray, maxDepth int) mgl64.Vec3 {
	var out mgl64.Vec3
	weight := 1.0
	for depth := 0; depth < maxDepth; depth++ {
		h, ok := s.nearest(r)
		if !ok {
			break
		}
		out = out.Add(s.shade(h).Mul(weight))
		weight *= h.surface.Material().Reflection
		r = Ray{
			Origin:    h.point.Add(h.normal.Mul(surfaceBias)),
			Direction: reflect(r.Direction, h.normal),
		}
	}
	return out
}

func reflect(d, n mgl64.Vec3) mgl64.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n))).Normalize()
}
