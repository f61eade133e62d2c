package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the perspective projection parameters
type Lens struct {
	FOV       float32 // vertical, radians
	NearPlane float32
	FarPlane  float32
}

// DefaultLens is the demo's fixed perspective.
var DefaultLens = Lens{
	FOV:       math.Pi / 1.6,
	NearPlane: 0.1,
	FarPlane:  100.0,
}

func (l Lens) ProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(l.FOV, aspectRatio, l.NearPlane, l.FarPlane)
}

// Camera is an eye position with the view matrix looking from it.
type Camera struct {
	Position mgl32.Vec3
	View     mgl32.Mat4
}

// Reflected returns the camera seen through the reflection matrix r: the view is
// composed with r and the eye is moved to its mirror image.
func (c Camera) Reflected(r mgl32.Mat4) Camera {
	return Camera{
		Position: ReflectPoint(r, c.Position),
		View:     c.View.Mul4(r),
	}
}

// rotateY rotates p about the world Y axis through the origin.
func rotateY(p mgl32.Vec3, angle float64) mgl32.Vec3 {
	s, c := math.Sincos(angle)
	x, z := float64(p[0]), float64(p[2])
	return mgl32.Vec3{
		float32(z*s + x*c),
		p[1],
		float32(z*c - x*s),
	}
}
