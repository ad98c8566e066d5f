package raytrace

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrShortStrip = errors.New("triangle strip needs at least 3 points")

type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Material holds the shading coefficients of a surface.
type Material struct {
	Diffuse    float64
	Specular   float64
	Reflection float64
}

// Surface is a primitive that can be shaded at a hit point.
type Surface interface {
	Normal(p mgl64.Vec3) mgl64.Vec3
	Color(p mgl64.Vec3) mgl64.Vec3
	Material() Material
}

// Object is anything placed in a scene. Intersect returns the distance along
// the ray to the nearest hit and the surface hit there, or +Inf and nil.
type Object interface {
	Intersect(r Ray) (float64, Surface)
}

type Sphere struct {
	Center mgl64.Vec3
	Radius float64
	Albedo mgl64.Vec3
	Mat    Material
}

func NewSphere(center mgl64.Vec3, radius float64, color mgl64.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Albedo: color,
		Mat:    Material{Diffuse: 1, Specular: 1, Reflection: .5},
	}
}

func (s *Sphere) Intersect(r Ray) (float64, Surface) {
	t := intersectSphere(r.Origin, r.Direction, s.Center, s.Radius)
	if math.IsInf(t, 1) {
		return t, nil
	}
	return t, s
}

func (s *Sphere) Normal(p mgl64.Vec3) mgl64.Vec3 { return p.Sub(s.Center).Normalize() }
func (s *Sphere) Color(mgl64.Vec3) mgl64.Vec3    { return s.Albedo }
func (s *Sphere) Material() Material             { return s.Mat }

// Plane is an infinite checkerboard with half-unit squares.
type Plane struct {
	Point mgl64.Vec3
	Norm  mgl64.Vec3
	Even  mgl64.Vec3
	Odd   mgl64.Vec3
	Mat   Material
}

func NewPlane(point, normal, even, odd mgl64.Vec3) *Plane {
	return &Plane{
		Point: point,
		Norm:  normal.Normalize(),
		Even:  even,
		Odd:   odd,
		Mat:   Material{Diffuse: .75, Specular: .5, Reflection: .25},
	}
}

func (pl *Plane) Intersect(r Ray) (float64, Surface) {
	t := intersectPlane(r.Origin, r.Direction, pl.Point, pl.Norm)
	if math.IsInf(t, 1) {
		return t, nil
	}
	return t, pl
}

func (pl *Plane) Normal(mgl64.Vec3) mgl64.Vec3 { return pl.Norm }
func (pl *Plane) Material() Material           { return pl.Mat }

func (pl *Plane) Color(p mgl64.Vec3) mgl64.Vec3 {
	if checker(p.X()) == checker(p.Z()) {
		return pl.Even
	}
	return pl.Odd
}

// checker truncates toward zero and keeps the parity non-negative, so the
// squares either side of an axis share a colour.
func checker(v float64) int {
	return ((int(v*2) % 2) + 2) % 2
}

type Triangle struct {
	A, B, C mgl64.Vec3
	Norm    mgl64.Vec3
	Albedo  mgl64.Vec3
	Mat     Material
}

// NewTriangle takes the winding (a, b, c); the normal is (b-a)×(c-a).
func NewTriangle(a, b, c, color mgl64.Vec3) *Triangle {
	return &Triangle{
		A:      a,
		B:      b,
		C:      c,
		Norm:   b.Sub(a).Cross(c.Sub(a)).Normalize(),
		Albedo: color,
		Mat:    Material{Diffuse: 1, Specular: 1, Reflection: .3},
	}
}

func (tr *Triangle) Intersect(r Ray) (float64, Surface) {
	t := intersectTriangle(r.Origin, r.Direction, tr)
	if math.IsInf(t, 1) {
		return t, nil
	}
	return t, tr
}

func (tr *Triangle) Normal(mgl64.Vec3) mgl64.Vec3 { return tr.Norm }
func (tr *Triangle) Color(mgl64.Vec3) mgl64.Vec3  { return tr.Albedo }
func (tr *Triangle) Material() Material           { return tr.Mat }

// TriangleStrip is one scene object; a hit resolves to the element triangle.
type TriangleStrip struct {
	Elements []*Triangle
}

// NewTriangleStrip builds (p0, p1, p2) and then (p[i-1], p[i-2], p[i]) for
// every further point, which keeps the winding consistent along the strip.
func NewTriangleStrip(points []mgl64.Vec3, color mgl64.Vec3) (*TriangleStrip, error) {
	if len(points) < 3 {
		return nil, ErrShortStrip
	}
	strip := &TriangleStrip{
		Elements: []*Triangle{NewTriangle(points[0], points[1], points[2], color)},
	}
	for i := 3; i < len(points); i++ {
		strip.Elements = append(strip.Elements, NewTriangle(points[i-1], points[i-2], points[i], color))
	}
	return strip, nil
}

func (s *TriangleStrip) Intersect(r Ray) (float64, Surface) {
	nearest := math.Inf(1)
	var hit Surface
	for _, tr := range s.Elements {
		if t := intersectTriangle(r.Origin, r.Direction, tr); t < nearest {
			nearest, hit = t, tr
		}
	}
	return nearest, hit
}

// intersectPlane returns the distance from o along d to the plane (p, n),
// or +Inf when the ray is parallel to it or points away.
func intersectPlane(o, d, p, n mgl64.Vec3) float64 {
	denom := d.Dot(n)
	if math.Abs(denom) < 1e-6 {
		return math.Inf(1)
	}
	t := p.Sub(o).Dot(n) / denom
	if t < 0 {
		return math.Inf(1)
	}
	return t
}

// intersectSphere solves the quadratic in the numerically stable form. A ray
// starting inside the sphere hits the far side.
func intersectSphere(o, d, center mgl64.Vec3, radius float64) float64 {
	a := d.Dot(d)
	os := o.Sub(center)
	b := 2 * d.Dot(os)
	c := os.Dot(os) - radius*radius
	disc := b*b - 4*a*c
	if disc <= 0 {
		return math.Inf(1)
	}
	sq := math.Sqrt(disc)
	var q float64
	if b < 0 {
		q = (-b - sq) / 2
	} else {
		q = (-b + sq) / 2
	}
	t0, t1 := q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t1 < 0 {
		return math.Inf(1)
	}
	if t0 < 0 {
		return t1
	}
	return t0
}

// intersectTriangle hits the supporting plane and then keeps the point when
// its barycentric coordinates lie inside the triangle.
func intersectTriangle(o, d mgl64.Vec3, tr *Triangle) float64 {
	t := intersectPlane(o, d, tr.A, tr.Norm)
	if math.IsInf(t, 1) {
		return t
	}
	p := o.Add(d.Mul(t))

	e2 := tr.C.Sub(tr.A)
	e1 := tr.B.Sub(tr.A)
	ep := p.Sub(tr.A)
	d22 := e2.Dot(e2)
	d21 := e2.Dot(e1)
	d2p := e2.Dot(ep)
	d11 := e1.Dot(e1)
	d1p := e1.Dot(ep)

	den := d22*d11 - d21*d21
	if den == 0 {
		return math.Inf(1)
	}
	u := (d11*d2p - d21*d1p) / den
	v := (d22*d1p - d21*d2p) / den
	if u >= 0 && v >= 0 && u+v < 1 {
		return t
	}
	return math.Inf(1)
}
